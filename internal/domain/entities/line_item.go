package entities

// LineItem is one line of a change order or invoice.
//
// Total is computed at write time (quantity * unit price) and persisted;
// NormalizeLineItems re-derives it before any persistence.

type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// NormalizeLineItems recomputes every line total from quantity and unit
// price, returning the normalized slice and the sum of line totals.
func NormalizeLineItems(items []LineItem) ([]LineItem, float64) {
	out := make([]LineItem, len(items))
	sum := 0.0
	for i, it := range items {
		it.Total = it.Quantity * it.UnitPrice
		out[i] = it
		sum += it.Total
	}
	return out, sum
}

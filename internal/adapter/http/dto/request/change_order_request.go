package request

import (
	"strings"

	"contractor_books/internal/domain/entities"
)

type LineItemRequest struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
}

// CreateChangeOrderRequest is the authoring payload. Status, token,
// expiry and client-response fields are deliberately absent: the workflow
// owns them and ignores anything else a caller sends.
type CreateChangeOrderRequest struct {
	ProjectID       string            `json:"project_id" binding:"required"`
	Title           string            `json:"title" binding:"required"`
	Description     string            `json:"description" binding:"required"`
	Reason          string            `json:"reason" binding:"required"`
	OriginalAmount  float64           `json:"original_amount"`
	ChangeAmount    float64           `json:"change_amount"`
	Items           []LineItemRequest `json:"items"`
	ContractorEmail string            `json:"contractor_email"`
}

func (r CreateChangeOrderRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.Items)
}

// ClientResponseRequest is the token-holder's decision on the approval page.
type ClientResponseRequest struct {
	Response string `json:"response" binding:"required"`
	Notes    string `json:"notes"`
}

func (r ClientResponseRequest) ResolveResponse() entities.ClientResponse {
	return entities.ClientResponse(strings.ToLower(strings.TrimSpace(r.Response)))
}

// ApproveSimpleRequest is the internal approval shortcut payload. Policy
// acceptance is validated server-side, not trusted from the UI.
type ApproveSimpleRequest struct {
	AcceptPolicies bool   `json:"accept_policies"`
	Notes          string `json:"notes"`
}

func toLineItems(items []LineItemRequest) []entities.LineItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.LineItem, len(items))
	for i, it := range items {
		out[i] = entities.LineItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		}
	}
	return out
}

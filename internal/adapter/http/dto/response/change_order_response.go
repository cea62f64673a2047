package response

import (
	"time"

	"contractor_books/internal/domain/entities"
)

type LineItemResponse struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// ChangeOrderResponse is the change order as rendered to both the authoring
// contractor and the token holder. The raw approval token is never exposed;
// the approval URL carries it for the authoring side only.
type ChangeOrderResponse struct {
	ID                  string             `json:"id"`
	ChangeOrderNumber   string             `json:"change_order_number"`
	ProjectID           string             `json:"project_id"`
	Title               string             `json:"title"`
	Description         string             `json:"description"`
	Reason              string             `json:"reason"`
	Status              string             `json:"status"`
	ClientResponse      string             `json:"client_response,omitempty"`
	ClientResponseDate  *time.Time         `json:"client_response_date,omitempty"`
	ClientResponseNotes string             `json:"client_response_notes,omitempty"`
	ExpiresAt           time.Time          `json:"expires_at"`
	Expired             bool               `json:"expired"`
	OriginalAmount      float64            `json:"original_amount"`
	ChangeAmount        float64            `json:"change_amount"`
	NewTotalAmount      float64            `json:"new_total_amount"`
	Items               []LineItemResponse `json:"items,omitempty"`
	BudgetApplied       bool               `json:"budget_applied"`
	ApprovalURL         string             `json:"approval_url,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
}

// FromChangeOrder renders a change order at the given instant. Expired is a
// read-time view: true whenever the window has closed, even if the sweep has
// not landed yet.
func FromChangeOrder(co entities.ChangeOrder, approvalURL string, now time.Time) ChangeOrderResponse {
	return ChangeOrderResponse{
		ID:                  co.ID,
		ChangeOrderNumber:   co.ChangeOrderNumber,
		ProjectID:           co.ProjectID,
		Title:               co.Title,
		Description:         co.Description,
		Reason:              co.Reason,
		Status:              string(co.Status),
		ClientResponse:      string(co.ClientResponse),
		ClientResponseDate:  co.ClientResponseDate,
		ClientResponseNotes: co.ClientResponseNotes,
		ExpiresAt:           co.ExpiresAt,
		Expired:             co.Status == entities.ChangeOrderStatusExpired || (co.Status == entities.ChangeOrderStatusPending && co.Expired(now)),
		OriginalAmount:      co.OriginalAmount,
		ChangeAmount:        co.ChangeAmount,
		NewTotalAmount:      co.NewTotalAmount,
		Items:               fromLineItems(co.Items),
		BudgetApplied:       co.BudgetApplied,
		ApprovalURL:         approvalURL,
		CreatedAt:           co.CreatedAt,
	}
}

func fromLineItems(items []entities.LineItem) []LineItemResponse {
	if len(items) == 0 {
		return nil
	}
	out := make([]LineItemResponse, len(items))
	for i, it := range items {
		out[i] = LineItemResponse(it)
	}
	return out
}

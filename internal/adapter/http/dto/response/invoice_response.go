package response

import (
	"time"

	"contractor_books/internal/domain/entities"
)

// InvoiceResponse carries both the persisted status and the effective
// (read-time) status, which reads overdue for a sent invoice past its due
// date.
type InvoiceResponse struct {
	ID              string             `json:"id"`
	InvoiceNumber   string             `json:"invoice_number"`
	ProjectID       string             `json:"project_id,omitempty"`
	ClientID        string             `json:"client_id,omitempty"`
	Status          string             `json:"status"`
	EffectiveStatus string             `json:"effective_status"`
	Items           []LineItemResponse `json:"items,omitempty"`
	TaxRate         float64            `json:"tax_rate"`
	Subtotal        float64            `json:"subtotal"`
	Tax             float64            `json:"tax"`
	Total           float64            `json:"total"`
	AmountPaid      float64            `json:"amount_paid"`
	Balance         float64            `json:"balance"`
	DueDate         time.Time          `json:"due_date"`
	PaidDate        *time.Time         `json:"paid_date,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
}

func FromInvoice(inv entities.Invoice, now time.Time) InvoiceResponse {
	return InvoiceResponse{
		ID:              inv.ID,
		InvoiceNumber:   inv.InvoiceNumber,
		ProjectID:       inv.ProjectID,
		ClientID:        inv.ClientID,
		Status:          string(inv.Status),
		EffectiveStatus: string(inv.EffectiveStatus(now)),
		Items:           fromLineItems(inv.Items),
		TaxRate:         inv.TaxRate,
		Subtotal:        inv.Subtotal,
		Tax:             inv.Tax,
		Total:           inv.Total,
		AmountPaid:      inv.AmountPaid,
		Balance:         inv.Balance,
		DueDate:         inv.DueDate,
		PaidDate:        inv.PaidDate,
		CreatedAt:       inv.CreatedAt,
	}
}

package request

import (
	"time"

	"contractor_books/internal/domain/entities"
)

// CreateInvoiceRequest is the invoice authoring payload. Derived amounts,
// amount paid and paid date are computed server-side; callers may only pick
// draft or sent as the initial status.
type CreateInvoiceRequest struct {
	ProjectID     string            `json:"project_id"`
	ClientID      string            `json:"client_id"`
	InvoiceNumber string            `json:"invoice_number"`
	Status        string            `json:"status"`
	Items         []LineItemRequest `json:"items" binding:"required"`
	TaxRate       float64           `json:"tax_rate"`
	DueDate       *time.Time        `json:"due_date"`
}

func (r CreateInvoiceRequest) ToLineItems() []entities.LineItem {
	return toLineItems(r.Items)
}

func (r CreateInvoiceRequest) ResolveDueDate() time.Time {
	if r.DueDate == nil {
		return time.Time{}
	}
	return *r.DueDate
}

// AddPaymentRequest records one payment against an invoice.
type AddPaymentRequest struct {
	Amount      float64    `json:"amount" binding:"required"`
	PaymentDate *time.Time `json:"payment_date"`
	Method      string     `json:"method"`
	Reference   string     `json:"reference"`
	Notes       string     `json:"notes"`
}

func (r AddPaymentRequest) ResolvePaymentDate() time.Time {
	if r.PaymentDate == nil {
		return time.Time{}
	}
	return *r.PaymentDate
}

package response

import (
	"time"

	"contractor_books/internal/domain/entities"
)

type PaymentResponse struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:          p.ID,
		InvoiceID:   p.InvoiceID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Method:      p.Method,
		Reference:   p.Reference,
		Notes:       p.Notes,
		CreatedAt:   p.CreatedAt,
	}
}

// PaymentAppliedResponse is returned after a payment lands: the recorded
// payment plus the invoice's refreshed ledger fields.
type PaymentAppliedResponse struct {
	Payment PaymentResponse `json:"payment"`
	Invoice InvoiceResponse `json:"invoice"`
}

func FromPaymentApplied(p entities.Payment, inv entities.Invoice, now time.Time) PaymentAppliedResponse {
	return PaymentAppliedResponse{
		Payment: FromPayment(p),
		Invoice: FromInvoice(inv, now),
	}
}

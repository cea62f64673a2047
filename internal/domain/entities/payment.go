package entities

import "time"

// PaymentMethod values the ledger accepts. Free-form methods are allowed;
// these cover the usual contractor cases plus the online gateway.

const (
	PaymentMethodCash        = "cash"
	PaymentMethodCheck       = "check"
	PaymentMethodTransfer    = "transfer"
	PaymentMethodCard        = "card"
	PaymentMethodMercadoPago = "mercadopago"
)

// Payment is an immutable child record of exactly one invoice.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (invoice_id-index): invoice_id
//
// There is no edit or delete: once created a payment contributes
// permanently to the invoice's amount paid. For gateway-collected payments
// Reference holds the provider payment id.

type Payment struct {
	ID          string    `json:"id"`
	InvoiceID   string    `json:"invoice_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	Method      string    `json:"method"`
	Reference   string    `json:"reference,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

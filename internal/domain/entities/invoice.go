package entities

import "time"

// InvoiceStatus is the persisted invoice status.
//
// overdue is intentionally absent: it is a read-time view computed by
// EffectiveStatus, never written to storage.

type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
	// InvoiceStatusOverdue only ever appears as an effective status.
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice is the ledger entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// Monetary fields are computed at write time and persisted:
//   - Subtotal = sum of line totals
//   - Tax      = Subtotal * TaxRate / 100
//   - Total    = Subtotal + Tax
//   - Balance  = max(0, Total - AmountPaid)
//
// AmountPaid only grows through the ledger (payment reversal is out of
// scope). PaidDate is set the first time the balance reaches zero and is
// never cleared.

type Invoice struct {
	ID            string        `json:"id"`
	UserID        string        `json:"user_id"`
	ProjectID     string        `json:"project_id,omitempty"`
	ClientID      string        `json:"client_id,omitempty"`
	InvoiceNumber string        `json:"invoice_number"`
	Status        InvoiceStatus `json:"status"`
	Items         []LineItem    `json:"items,omitempty"`
	TaxRate       float64       `json:"tax_rate"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	AmountPaid    float64       `json:"amount_paid"`
	Balance       float64       `json:"balance"`
	DueDate       time.Time     `json:"due_date"`
	PaidDate      *time.Time    `json:"paid_date,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

// InvoiceTotals is the result of a totals recomputation.

type InvoiceTotals struct {
	Subtotal float64
	Tax      float64
	Total    float64
}

// ComputeInvoiceTotals derives subtotal, tax and total from line items and a
// tax rate (percent). Pure; must run after any item or tax-rate edit and
// before the edited invoice is persisted.
func ComputeInvoiceTotals(items []LineItem, taxRate float64) InvoiceTotals {
	_, subtotal := NormalizeLineItems(items)
	tax := subtotal * taxRate / 100
	return InvoiceTotals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}
}

// BalanceDue derives the open balance from a total and the amount paid.
// Never negative: overpayment clamps to zero.
func BalanceDue(total, amountPaid float64) float64 {
	b := total - amountPaid
	if b < 0 {
		return 0
	}
	return b
}

// EffectiveStatus returns the read-time status of the invoice: a sent
// invoice past its due date reads as overdue without mutating the persisted
// status.
func (i Invoice) EffectiveStatus(now time.Time) InvoiceStatus {
	if i.Status == InvoiceStatusSent && now.After(i.DueDate) {
		return InvoiceStatusOverdue
	}
	return i.Status
}

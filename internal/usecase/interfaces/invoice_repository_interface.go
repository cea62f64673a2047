package interfaces

import (
	"context"
	"time"

	"contractor_books/internal/domain/entities"
)

// IInvoiceRepository abstracts DynamoDB persistence for Invoice.
//
// UpdatePaymentState writes the derived ledger fields (amount_paid, balance,
// status, paid_date) in one document update; it returns a zero entity when
// the invoice does not exist.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Invoice, error)
	UpdatePaymentState(ctx context.Context, id string, amountPaid, balance float64, status entities.InvoiceStatus, paidDate *time.Time) (entities.Invoice, error)
}

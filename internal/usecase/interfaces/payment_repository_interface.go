package interfaces

import (
	"context"

	"contractor_books/internal/domain/entities"
)

// IPaymentRepository abstracts DynamoDB persistence for Payment.
//
// Payments are immutable: Create is the only write. The ledger persists the
// payment before the invoice update, so a payment without a matching ledger
// update is the only possible inconsistency, never the reverse.

type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

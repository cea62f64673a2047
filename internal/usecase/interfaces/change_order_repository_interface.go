package interfaces

import (
	"context"
	"time"

	"contractor_books/internal/domain/entities"
)

// IChangeOrderRepository abstracts DynamoDB persistence for ChangeOrder.
//
// Conditional semantics (per-document atomicity, no cross-document
// transactions):
//   - SetClientResponse writes the response only while the record is still
//     pending with no response recorded; on a lost race or a missing record
//     it returns a zero entity, never an overwrite.
//   - MarkExpired transitions pending -> expired and reports false when the
//     record was no longer pending (already swept or responded).
//   - SetBudgetApplied flips the budget_applied flag only when it is unset,
//     so a projection retry is idempotent per change order.

type IChangeOrderRepository interface {
	Create(ctx context.Context, co entities.ChangeOrder) (entities.ChangeOrder, error)
	GetByID(ctx context.Context, id string) (entities.ChangeOrder, error)
	GetByApprovalToken(ctx context.Context, token string) (entities.ChangeOrder, error)
	ListPendingExpiredBefore(ctx context.Context, cutoff time.Time) ([]entities.ChangeOrder, error)
	SetClientResponse(ctx context.Context, id string, response entities.ClientResponse, respondedAt time.Time, notes string) (entities.ChangeOrder, error)
	MarkExpired(ctx context.Context, id string) (bool, error)
	SetBudgetApplied(ctx context.Context, id string) (bool, error)
}

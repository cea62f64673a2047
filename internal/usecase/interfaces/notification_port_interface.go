package interfaces

import (
	"context"

	"contractor_books/internal/domain/entities"
)

// INotificationPort is the outbound notification boundary (e.g. the
// response-confirmation email to the contractor).
//
// Delivery is best-effort: callers log failures and never let them abort a
// financial-state transition.
type INotificationPort interface {
	SendResponseConfirmation(ctx context.Context, co entities.ChangeOrder, response entities.ClientResponse, contractorEmail string) error
}

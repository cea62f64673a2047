package interfaces

import (
	"context"

	"contractor_books/internal/domain/entities"
)

// IProjectRepository abstracts DynamoDB persistence for the budget slice of
// Project.
//
// AddToEstimatedCost must be an atomic add against the stored value (the
// projector composes with direct project edits happening elsewhere); it
// returns a zero entity when the project does not exist.

type IProjectRepository interface {
	GetByID(ctx context.Context, id string) (entities.Project, error)
	AddToEstimatedCost(ctx context.Context, id string, delta float64) (entities.Project, error)
}

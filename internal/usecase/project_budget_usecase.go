package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase/interfaces"
)

var (
	ErrProjectNotFound  = errors.New("project not found")
	ErrInvalidProjectID = errors.New("invalid project id")
)

// IProjectBudgetUseCase applies the budgetary side-effect of an approved
// change order to the owning project.

type IProjectBudgetUseCase interface {
	ApplyChangeOrder(ctx context.Context, projectID string, changeAmount float64) (entities.Project, error)
}

type ProjectBudgetUseCase struct {
	repo interfaces.IProjectRepository
}

var _ IProjectBudgetUseCase = (*ProjectBudgetUseCase)(nil)

func NewProjectBudgetUseCase(repo interfaces.IProjectRepository) *ProjectBudgetUseCase {
	return &ProjectBudgetUseCase{repo: repo}
}

// ApplyChangeOrder adds the change amount (negative for deductions) to the
// project's current estimated cost. The add is delegated to the repository
// as an atomic delta so concurrent budget edits are never clobbered.
func (u *ProjectBudgetUseCase) ApplyChangeOrder(ctx context.Context, projectID string, changeAmount float64) (entities.Project, error) {
	projectID = strings.TrimSpace(projectID)
	if projectID == "" {
		return entities.Project{}, ErrInvalidProjectID
	}

	updated, err := u.repo.AddToEstimatedCost(ctx, projectID, changeAmount)
	if err != nil {
		log.Printf("[budget][usecase] add to estimated cost failed project_id=%s delta=%.2f err=%v", projectID, changeAmount, err)
		return entities.Project{}, err
	}
	if updated.ID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	log.Printf("[budget][usecase] estimated cost updated project_id=%s delta=%.2f estimated_cost=%.2f", projectID, changeAmount, updated.EstimatedCost)
	return updated, nil
}

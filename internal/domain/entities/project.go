package entities

import "time"

// Project carries only the budget-relevant slice of the project record.
//
// EstimatedCost is mutated from two workflows (direct edits elsewhere and
// the change-order projector), so the projector must always add a delta to
// the current stored value, never overwrite with a snapshot.

type Project struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	EstimatedCost float64   `json:"estimated_cost"`
	UpdatedAt     time.Time `json:"updated_at"`
}

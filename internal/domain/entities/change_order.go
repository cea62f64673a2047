package entities

import "time"

// ChangeOrderStatus represents the lifecycle of a change order.
//
// Domain notes:
//   - A change order starts pending and moves exactly once to approved,
//     declined or expired. All three are terminal.
//   - expired is reached either by the sweep or by a response attempt
//     arriving after ExpiresAt; both paths leave the client response unset.

type ChangeOrderStatus string

const (
	ChangeOrderStatusPending  ChangeOrderStatus = "pending"
	ChangeOrderStatusApproved ChangeOrderStatus = "approved"
	ChangeOrderStatusDeclined ChangeOrderStatus = "declined"
	ChangeOrderStatusExpired  ChangeOrderStatus = "expired"
)

// ClientResponse is the external client's decision, recorded at most once.

type ClientResponse string

const (
	ClientResponseApproved ClientResponse = "approved"
	ClientResponseDeclined ClientResponse = "declined"
)

// ChangeOrder is the approval-workflow entity persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (approval_token-index): approval_token
//   - GSI2 (status-index): status
//
// ApprovalToken is a bearer capability: anyone holding it may respond on
// behalf of the client. It is never derivable from other fields.
//
// BudgetApplied records whether the approved change amount has been applied
// to the owning project's estimated cost; it keys the projection retry so a
// re-run never double-applies the delta.

type ChangeOrder struct {
	ID                  string            `json:"id"`
	UserID              string            `json:"user_id"`
	ProjectID           string            `json:"project_id"`
	ChangeOrderNumber   string            `json:"change_order_number"`
	Title               string            `json:"title"`
	Description         string            `json:"description"`
	Reason              string            `json:"reason"`
	Status              ChangeOrderStatus `json:"status"`
	ApprovalToken       string            `json:"approval_token"`
	ClientResponse      ClientResponse    `json:"client_response,omitempty"`
	ClientResponseDate  *time.Time        `json:"client_response_date,omitempty"`
	ClientResponseNotes string            `json:"client_response_notes,omitempty"`
	ExpiresAt           time.Time         `json:"expires_at"`
	OriginalAmount      float64           `json:"original_amount"`
	ChangeAmount        float64           `json:"change_amount"`
	NewTotalAmount      float64           `json:"new_total_amount"`
	Items               []LineItem        `json:"items,omitempty"`
	ContractorEmail     string            `json:"contractor_email,omitempty"`
	BudgetApplied       bool              `json:"budget_applied"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// Expired reports whether the approval window has closed at the given
// instant. Expiration is judged against ExpiresAt, not Status, because the
// sweep is allowed to lag behind the clock.
func (c ChangeOrder) Expired(now time.Time) bool {
	return now.After(c.ExpiresAt)
}

// Responded reports whether a client response has already been recorded.
func (c ChangeOrder) Responded() bool {
	return c.ClientResponse != ""
}

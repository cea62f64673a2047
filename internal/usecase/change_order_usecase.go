package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand/v2"
	"strings"
	"time"

	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrChangeOrderNotFound     = errors.New("change order not found")
	ErrApprovalExpired         = errors.New("approval window expired")
	ErrAlreadyResponded        = errors.New("change order already responded")
	ErrInvalidClientResponse   = errors.New("invalid client response")
	ErrInvalidChangeOrderInput = errors.New("invalid change order input")
	ErrInvalidChangeOrderID    = errors.New("invalid change order id")
	ErrPoliciesNotAccepted     = errors.New("policies not accepted")
	ErrChangeOrderNotApproved  = errors.New("change order not approved")
	ErrBudgetAlreadyApplied    = errors.New("budget already applied")
)

// CreateChangeOrderCommand whitelists the fields an authoring contractor may
// set. Status, approval token, client response and expiry are owned by the
// workflow and cannot be supplied by the caller.

type CreateChangeOrderCommand struct {
	ProjectID       string
	Title           string
	Description     string
	Reason          string
	OriginalAmount  float64
	ChangeAmount    float64
	Items           []entities.LineItem
	ContractorEmail string
}

// IChangeOrderUseCase exposes the change-order approval workflow.
//
//   - Create          => author a pending change order with a fresh token
//   - RespondByToken  => external client decision via the approval URL
//   - ApproveDirect   => internal shortcut, gated by policy acceptance
//   - ExpireSweep     => batch pending -> expired for lapsed windows
//   - RetryBudgetProjection => re-apply a budget delta that failed after
//     the approval was already durable

type IChangeOrderUseCase interface {
	Create(ctx context.Context, userID string, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error)
	GetByToken(ctx context.Context, token string) (entities.ChangeOrder, error)
	RespondByToken(ctx context.Context, token string, response entities.ClientResponse, notes string) (entities.ChangeOrder, error)
	ApproveDirect(ctx context.Context, changeOrderID string, acceptPolicies bool, notes string) (entities.ChangeOrder, error)
	ExpireSweep(ctx context.Context, now time.Time) (int, error)
	RetryBudgetProjection(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error)
	GenerateApprovalURL(token string) string
}

type ChangeOrderUseCase struct {
	repo     interfaces.IChangeOrderRepository
	budget   IProjectBudgetUseCase
	notifier interfaces.INotificationPort
	tokens   *ApprovalTokenIssuer
	horizon  time.Duration
}

var _ IChangeOrderUseCase = (*ChangeOrderUseCase)(nil)

func NewChangeOrderUseCase(
	repo interfaces.IChangeOrderRepository,
	budget IProjectBudgetUseCase,
	notifier interfaces.INotificationPort,
	tokens *ApprovalTokenIssuer,
	horizon time.Duration,
) *ChangeOrderUseCase {
	return &ChangeOrderUseCase{repo: repo, budget: budget, notifier: notifier, tokens: tokens, horizon: horizon}
}

func (u *ChangeOrderUseCase) Create(ctx context.Context, userID string, cmd CreateChangeOrderCommand) (entities.ChangeOrder, error) {
	userID = strings.TrimSpace(userID)
	cmd.ProjectID = strings.TrimSpace(cmd.ProjectID)
	if userID == "" || cmd.ProjectID == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderInput
	}
	if strings.TrimSpace(cmd.Title) == "" || strings.TrimSpace(cmd.Description) == "" || strings.TrimSpace(cmd.Reason) == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderInput
	}
	if cmd.OriginalAmount < 0 {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderInput
	}
	for _, it := range cmd.Items {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return entities.ChangeOrder{}, ErrInvalidChangeOrderInput
		}
	}

	token, err := u.tokens.Issue()
	if err != nil {
		log.Printf("[changeorder][usecase] token issue failed err=%v", err)
		return entities.ChangeOrder{}, err
	}

	items, _ := entities.NormalizeLineItems(cmd.Items)
	now := time.Now().UTC()
	co := entities.ChangeOrder{
		ID:                uuid.NewString(),
		UserID:            userID,
		ProjectID:         cmd.ProjectID,
		ChangeOrderNumber: newChangeOrderNumber(now),
		Title:             strings.TrimSpace(cmd.Title),
		Description:       strings.TrimSpace(cmd.Description),
		Reason:            strings.TrimSpace(cmd.Reason),
		Status:            entities.ChangeOrderStatusPending,
		ApprovalToken:     token,
		ExpiresAt:         now.Add(u.horizon),
		OriginalAmount:    cmd.OriginalAmount,
		ChangeAmount:      cmd.ChangeAmount,
		NewTotalAmount:    cmd.OriginalAmount + cmd.ChangeAmount,
		Items:             items,
		ContractorEmail:   strings.TrimSpace(cmd.ContractorEmail),
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	created, err := u.repo.Create(ctx, co)
	if err != nil {
		log.Printf("[changeorder][usecase] create failed project_id=%s err=%v", cmd.ProjectID, err)
		return entities.ChangeOrder{}, err
	}
	log.Printf("[changeorder][usecase] created change_order_id=%s number=%s project_id=%s expires_at=%s", created.ID, created.ChangeOrderNumber, created.ProjectID, created.ExpiresAt.Format(time.RFC3339))
	return created, nil
}

// GetByToken resolves a change order for the approval page. Terminal and
// expired records still resolve; the caller renders their state.
func (u *ChangeOrderUseCase) GetByToken(ctx context.Context, token string) (entities.ChangeOrder, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}

	co, err := u.repo.GetByApprovalToken(ctx, token)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" || !TokenMatches(co.ApprovalToken, token) {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return co, nil
}

func (u *ChangeOrderUseCase) RespondByToken(ctx context.Context, token string, response entities.ClientResponse, notes string) (entities.ChangeOrder, error) {
	if response != entities.ClientResponseApproved && response != entities.ClientResponseDeclined {
		return entities.ChangeOrder{}, ErrInvalidClientResponse
	}

	co, err := u.GetByToken(ctx, token)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	return u.respond(ctx, co, response, notes)
}

// ApproveDirect is the internal shortcut, equivalent to a token response of
// "approved" but keyed by document ID. Policy acceptance is a required
// server-side input, not a UI-only gate.
func (u *ChangeOrderUseCase) ApproveDirect(ctx context.Context, changeOrderID string, acceptPolicies bool, notes string) (entities.ChangeOrder, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}
	if !acceptPolicies {
		return entities.ChangeOrder{}, ErrPoliciesNotAccepted
	}

	co, err := u.repo.GetByID(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	return u.respond(ctx, co, entities.ClientResponseApproved, notes)
}

// respond runs the shared guard chain and the state transition. The guards
// (expired, already responded) happen before the write; the conditional
// write closes the race with a concurrent response or sweep.
func (u *ChangeOrderUseCase) respond(ctx context.Context, co entities.ChangeOrder, response entities.ClientResponse, notes string) (entities.ChangeOrder, error) {
	now := time.Now().UTC()

	// Expiry is judged against the clock, not the swept status: the sweep
	// may lag and a late response must still be rejected.
	if co.Status == entities.ChangeOrderStatusExpired || (co.Status == entities.ChangeOrderStatusPending && co.Expired(now)) {
		return entities.ChangeOrder{}, ErrApprovalExpired
	}
	if co.Responded() || co.Status != entities.ChangeOrderStatusPending {
		return entities.ChangeOrder{}, ErrAlreadyResponded
	}

	updated, err := u.repo.SetClientResponse(ctx, co.ID, response, now, strings.TrimSpace(notes))
	if err != nil {
		log.Printf("[changeorder][usecase] response write failed change_order_id=%s err=%v", co.ID, err)
		return entities.ChangeOrder{}, err
	}
	if updated.ID == "" {
		// Lost the race: someone else responded or the sweep landed first.
		return entities.ChangeOrder{}, ErrAlreadyResponded
	}
	log.Printf("[changeorder][usecase] response recorded change_order_id=%s response=%s", updated.ID, response)

	// The budget projection and the notification run after the response is
	// durable. Neither may roll back or fail the client's action.
	if response == entities.ClientResponseApproved {
		updated = u.applyBudget(ctx, updated)
	}
	u.notify(ctx, updated, response)

	return updated, nil
}

// applyBudget applies the change amount to the project and flags the change
// order once the projection landed. A failure leaves budget_applied unset so
// RetryBudgetProjection can re-run it; the approval itself stands.
func (u *ChangeOrderUseCase) applyBudget(ctx context.Context, co entities.ChangeOrder) entities.ChangeOrder {
	if _, err := u.budget.ApplyChangeOrder(ctx, co.ProjectID, co.ChangeAmount); err != nil {
		log.Printf("[changeorder][usecase] budget projection failed; requires reconciliation change_order_id=%s project_id=%s delta=%.2f err=%v", co.ID, co.ProjectID, co.ChangeAmount, err)
		return co
	}

	applied, err := u.repo.SetBudgetApplied(ctx, co.ID)
	if err != nil {
		log.Printf("[changeorder][usecase] budget_applied flag write failed change_order_id=%s err=%v", co.ID, err)
		return co
	}
	if applied {
		co.BudgetApplied = true
	}
	return co
}

func (u *ChangeOrderUseCase) notify(ctx context.Context, co entities.ChangeOrder, response entities.ClientResponse) {
	if u.notifier == nil || co.ContractorEmail == "" {
		return
	}
	if err := u.notifier.SendResponseConfirmation(ctx, co, response, co.ContractorEmail); err != nil {
		log.Printf("[changeorder][usecase] notification failed change_order_id=%s err=%v", co.ID, err)
	}
}

// ExpireSweep transitions every pending change order whose window closed
// before now. Idempotent: each expire write is conditional on the record
// still being pending, so overlapping runs do at most one redundant no-op.
func (u *ChangeOrderUseCase) ExpireSweep(ctx context.Context, now time.Time) (int, error) {
	lapsed, err := u.repo.ListPendingExpiredBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, co := range lapsed {
		ok, err := u.repo.MarkExpired(ctx, co.ID)
		if err != nil {
			log.Printf("[changeorder][usecase] expire failed change_order_id=%s err=%v", co.ID, err)
			continue
		}
		if ok {
			count++
		}
	}
	if count > 0 {
		log.Printf("[changeorder][usecase] expire sweep done expired=%d scanned=%d", count, len(lapsed))
	}
	return count, nil
}

// RetryBudgetProjection re-applies the budget delta of an approved change
// order whose projection failed after the approval write. Keyed on the
// budget_applied flag: an already-applied change order is rejected instead
// of double-counted.
func (u *ChangeOrderUseCase) RetryBudgetProjection(ctx context.Context, changeOrderID string) (entities.ChangeOrder, error) {
	changeOrderID = strings.TrimSpace(changeOrderID)
	if changeOrderID == "" {
		return entities.ChangeOrder{}, ErrInvalidChangeOrderID
	}

	co, err := u.repo.GetByID(ctx, changeOrderID)
	if err != nil {
		return entities.ChangeOrder{}, err
	}
	if co.ID == "" {
		return entities.ChangeOrder{}, ErrChangeOrderNotFound
	}
	if co.Status != entities.ChangeOrderStatusApproved {
		return entities.ChangeOrder{}, ErrChangeOrderNotApproved
	}
	if co.BudgetApplied {
		return entities.ChangeOrder{}, ErrBudgetAlreadyApplied
	}

	if _, err := u.budget.ApplyChangeOrder(ctx, co.ProjectID, co.ChangeAmount); err != nil {
		return entities.ChangeOrder{}, err
	}
	if _, err := u.repo.SetBudgetApplied(ctx, co.ID); err != nil {
		log.Printf("[changeorder][usecase] budget_applied flag write failed change_order_id=%s err=%v", co.ID, err)
		return entities.ChangeOrder{}, err
	}
	co.BudgetApplied = true
	return co, nil
}

func (u *ChangeOrderUseCase) GenerateApprovalURL(token string) string {
	return u.tokens.ApprovalURL(token)
}

// newChangeOrderNumber builds the human-facing CO-YYYYMMDD-NNN number. Not
// guaranteed globally unique; the document ID carries identity.
func newChangeOrderNumber(now time.Time) string {
	return fmt.Sprintf("CO-%s-%03d", now.Format("20060102"), rand.IntN(1000))
}

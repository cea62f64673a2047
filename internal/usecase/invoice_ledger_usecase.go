package usecase

import (
	"context"
	"encoding/json"
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
	ErrInvoiceNotFound        = errors.New("invoice not found")
	ErrInvalidInvoiceID       = errors.New("invalid invoice id")
	ErrInvalidInvoiceInput    = errors.New("invalid invoice input")
	ErrInvalidPaymentAmount   = errors.New("invalid payment amount")
	ErrNothingToCollect       = errors.New("invoice has no open balance")
	ErrGatewayNotConfigured   = errors.New("payment gateway not configured")
	ErrGatewayPaymentDeclined = errors.New("gateway payment not approved")
	ErrInvalidGatewayPayload  = errors.New("invalid gateway payload")
)

// CreateInvoiceCommand whitelists the fields a contractor may set when
// authoring an invoice. Derived amounts (subtotal, tax, total, balance),
// amount paid, paid date and the paid/cancelled statuses are owned by the
// ledger.

type CreateInvoiceCommand struct {
	ProjectID     string
	ClientID      string
	InvoiceNumber string
	Status        entities.InvoiceStatus
	Items         []entities.LineItem
	TaxRate       float64
	DueDate       time.Time
}

// PaymentCommand is the input for recording one payment against an invoice.

type PaymentCommand struct {
	Amount      float64
	PaymentDate time.Time
	Method      string
	Reference   string
	Notes       string
}

// IInvoiceLedgerUseCase owns invoice payment application and the derived
// balance/status fields.
//
// AddPayment accumulates; MarkAsPaid overwrites (amount paid snaps to the
// total). The two are not interchangeable: marking a partially paid invoice
// as paid discards the gap between the payment history and the total.

type IInvoiceLedgerUseCase interface {
	CreateInvoice(ctx context.Context, userID string, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	AddPayment(ctx context.Context, invoiceID string, cmd PaymentCommand) (entities.Payment, entities.Invoice, error)
	MarkAsPaid(ctx context.Context, invoiceID string) (entities.Invoice, error)
	ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	CollectOnline(ctx context.Context, invoiceID string, gatewayPayload json.RawMessage) (entities.Payment, entities.Invoice, error)
}

type InvoiceLedgerUseCase struct {
	invoices interfaces.IInvoiceRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
}

var _ IInvoiceLedgerUseCase = (*InvoiceLedgerUseCase)(nil)

func NewInvoiceLedgerUseCase(invoices interfaces.IInvoiceRepository, payments interfaces.IPaymentRepository, gateway interfaces.IPaymentGateway) *InvoiceLedgerUseCase {
	return &InvoiceLedgerUseCase{invoices: invoices, payments: payments, gateway: gateway}
}

func (u *InvoiceLedgerUseCase) CreateInvoice(ctx context.Context, userID string, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}
	if cmd.TaxRate < 0 || len(cmd.Items) == 0 {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}
	for _, it := range cmd.Items {
		if it.Quantity < 0 || it.UnitPrice < 0 {
			return entities.Invoice{}, ErrInvalidInvoiceInput
		}
	}
	status := cmd.Status
	if status == "" {
		status = entities.InvoiceStatusDraft
	}
	if status != entities.InvoiceStatusDraft && status != entities.InvoiceStatusSent {
		return entities.Invoice{}, ErrInvalidInvoiceInput
	}

	now := time.Now().UTC()
	items, _ := entities.NormalizeLineItems(cmd.Items)
	totals := entities.ComputeInvoiceTotals(items, cmd.TaxRate)

	number := strings.TrimSpace(cmd.InvoiceNumber)
	if number == "" {
		number = newInvoiceNumber(now)
	}
	dueDate := cmd.DueDate
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 0, 30)
	}

	inv := entities.Invoice{
		ID:            uuid.NewString(),
		UserID:        userID,
		ProjectID:     strings.TrimSpace(cmd.ProjectID),
		ClientID:      strings.TrimSpace(cmd.ClientID),
		InvoiceNumber: number,
		Status:        status,
		Items:         items,
		TaxRate:       cmd.TaxRate,
		Subtotal:      totals.Subtotal,
		Tax:           totals.Tax,
		Total:         totals.Total,
		AmountPaid:    0,
		Balance:       totals.Total,
		DueDate:       dueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := u.invoices.Create(ctx, inv)
	if err != nil {
		log.Printf("[invoice][usecase] create failed user_id=%s err=%v", userID, err)
		return entities.Invoice{}, err
	}
	log.Printf("[invoice][usecase] created invoice_id=%s number=%s total=%.2f", created.ID, created.InvoiceNumber, created.Total)
	return created, nil
}

func (u *InvoiceLedgerUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

// AddPayment records one immutable payment and recomputes the invoice's
// derived ledger fields. The payment is persisted before the invoice update:
// a crash in between leaves a payment without a ledger update, which is the
// only inconsistency direction the store model allows.
func (u *InvoiceLedgerUseCase) AddPayment(ctx context.Context, invoiceID string, cmd PaymentCommand) (entities.Payment, entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidInvoiceID
	}
	if cmd.Amount <= 0 {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidPaymentAmount
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
	}

	return u.applyPayment(ctx, inv, cmd)
}

func (u *InvoiceLedgerUseCase) applyPayment(ctx context.Context, inv entities.Invoice, cmd PaymentCommand) (entities.Payment, entities.Invoice, error) {
	now := time.Now().UTC()
	paymentDate := cmd.PaymentDate
	if paymentDate.IsZero() {
		paymentDate = now
	}
	method := strings.TrimSpace(cmd.Method)
	if method == "" {
		method = entities.PaymentMethodCash
	}

	p := entities.Payment{
		ID:          uuid.NewString(),
		InvoiceID:   inv.ID,
		Amount:      cmd.Amount,
		PaymentDate: paymentDate,
		Method:      method,
		Reference:   strings.TrimSpace(cmd.Reference),
		Notes:       strings.TrimSpace(cmd.Notes),
		CreatedAt:   now,
	}
	created, err := u.payments.Create(ctx, p)
	if err != nil {
		log.Printf("[invoice][usecase] payment create failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Payment{}, entities.Invoice{}, err
	}

	newAmountPaid := inv.AmountPaid + cmd.Amount
	newBalance := entities.BalanceDue(inv.Total, newAmountPaid)
	newStatus := inv.Status
	paidDate := inv.PaidDate
	if newBalance <= 0 {
		newStatus = entities.InvoiceStatusPaid
		if paidDate == nil {
			pd := now
			paidDate = &pd
		}
	}

	updated, err := u.invoices.UpdatePaymentState(ctx, inv.ID, newAmountPaid, newBalance, newStatus, paidDate)
	if err != nil {
		log.Printf("[invoice][usecase] ledger update failed after payment write invoice_id=%s payment_id=%s err=%v", inv.ID, created.ID, err)
		return entities.Payment{}, entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] payment applied invoice_id=%s payment_id=%s amount=%.2f balance=%.2f status=%s", inv.ID, created.ID, cmd.Amount, updated.Balance, updated.Status)
	return created, updated, nil
}

// MarkAsPaid snaps the ledger to fully paid: amount paid becomes the total
// and the balance zero, regardless of prior partial payments. It overwrites
// rather than adds; use AddPayment to record actual money movements.
func (u *InvoiceLedgerUseCase) MarkAsPaid(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}

	paidDate := inv.PaidDate
	if paidDate == nil {
		now := time.Now().UTC()
		paidDate = &now
	}

	updated, err := u.invoices.UpdatePaymentState(ctx, inv.ID, inv.Total, 0, entities.InvoiceStatusPaid, paidDate)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	log.Printf("[invoice][usecase] marked paid invoice_id=%s total=%.2f", updated.ID, updated.Total)
	return updated, nil
}

func (u *InvoiceLedgerUseCase) ListPayments(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return nil, ErrInvalidInvoiceID
	}
	return u.payments.ListByInvoiceID(ctx, invoiceID)
}

// CollectOnline charges the invoice's open balance through the payment
// gateway and, only on provider approval, records the result through the
// same accumulating path as AddPayment. The balance is derived from freshly
// recomputed totals, never from the persisted snapshot.
func (u *InvoiceLedgerUseCase) CollectOnline(ctx context.Context, invoiceID string, gatewayPayload json.RawMessage) (entities.Payment, entities.Invoice, error) {
	invoiceID = strings.TrimSpace(invoiceID)
	if invoiceID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidInvoiceID
	}
	if u.gateway == nil {
		return entities.Payment{}, entities.Invoice{}, ErrGatewayNotConfigured
	}
	if len(gatewayPayload) == 0 {
		gatewayPayload = json.RawMessage("{}")
	}
	if !json.Valid(gatewayPayload) {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidGatewayPayload
	}

	inv, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Payment{}, entities.Invoice{}, ErrInvoiceNotFound
	}

	totals := entities.ComputeInvoiceTotals(inv.Items, inv.TaxRate)
	balance := entities.BalanceDue(totals.Total, inv.AmountPaid)
	if balance <= 0 {
		return entities.Payment{}, entities.Invoice{}, ErrNothingToCollect
	}

	// The source of truth for amount is the invoice in DB, never the caller.
	var reqMap map[string]any
	if err := json.Unmarshal(gatewayPayload, &reqMap); err != nil {
		return entities.Payment{}, entities.Invoice{}, ErrInvalidGatewayPayload
	}
	if reqMap == nil {
		reqMap = map[string]any{}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = inv.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceNumber)
	}
	reqMap["transaction_amount"] = balance
	payload, err := json.Marshal(reqMap)
	if err != nil {
		return entities.Payment{}, entities.Invoice{}, err
	}

	log.Printf("[invoice][usecase] online collection start invoice_id=%s amount=%.2f", inv.ID, balance)
	providerPaymentID, providerStatus, _, err := u.gateway.CreatePayment(ctx, payload)
	if err != nil {
		log.Printf("[invoice][usecase] gateway payment failed invoice_id=%s err=%v", inv.ID, err)
		return entities.Payment{}, entities.Invoice{}, err
	}
	if providerStatus != "approved" {
		log.Printf("[invoice][usecase] gateway payment not approved invoice_id=%s provider_status=%s", inv.ID, providerStatus)
		return entities.Payment{}, entities.Invoice{}, ErrGatewayPaymentDeclined
	}

	return u.applyPayment(ctx, inv, PaymentCommand{
		Amount:    balance,
		Method:    entities.PaymentMethodMercadoPago,
		Reference: providerPaymentID,
	})
}

// newInvoiceNumber builds the human-facing INV-YYYYMMDD-NNN number.
func newInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%s-%03d", now.Format("20060102"), rand.IntN(1000))
}

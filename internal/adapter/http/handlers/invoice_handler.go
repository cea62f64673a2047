package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	request "contractor_books/internal/adapter/http/dto/request"
	response "contractor_books/internal/adapter/http/dto/response"
	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase"
	"contractor_books/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", "Invalid payment payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for the invoice payment ledger.

type InvoiceHandler struct {
	usecase usecase.IInvoiceLedgerUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceLedgerUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	inv, err := h.usecase.CreateInvoice(c.Request.Context(), userID, usecase.CreateInvoiceCommand{
		ProjectID:     payload.ProjectID,
		ClientID:      payload.ClientID,
		InvoiceNumber: payload.InvoiceNumber,
		Status:        entities.InvoiceStatus(strings.ToLower(strings.TrimSpace(payload.Status))),
		Items:         payload.ToLineItems(),
		TaxRate:       payload.TaxRate,
		DueDate:       payload.ResolveDueDate(),
	})
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(inv, time.Now().UTC()))
}

func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, time.Now().UTC()))
}

// AddPayment records one payment and returns it with the refreshed ledger.
func (h *InvoiceHandler) AddPayment(c *gin.Context) {
	var payload request.AddPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, inv, err := h.usecase.AddPayment(c.Request.Context(), c.Param("id"), usecase.PaymentCommand{
		Amount:      payload.Amount,
		PaymentDate: payload.ResolvePaymentDate(),
		Method:      payload.Method,
		Reference:   payload.Reference,
		Notes:       payload.Notes,
	})
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentApplied(p, inv, time.Now().UTC()))
}

func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := make([]response.PaymentResponse, 0, len(payments))
	for _, p := range payments {
		out = append(out, response.FromPayment(p))
	}
	c.JSON(http.StatusOK, out)
}

// MarkAsPaid snaps the invoice to fully paid. This overwrites the ledger
// fields rather than adding a payment; see the usecase contract.
func (h *InvoiceHandler) MarkAsPaid(c *gin.Context) {
	inv, err := h.usecase.MarkAsPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInvoice(inv, time.Now().UTC()))
}

// CollectPayment charges the open balance through the payment gateway.
func (h *InvoiceHandler) CollectPayment(c *gin.Context) {
	payload, err := readGatewayPayload(c)
	if err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	p, inv, err := h.usecase.CollectOnline(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPaymentApplied(p, inv, time.Now().UTC()))
}

// readGatewayPayload accepts either a raw provider payload as the request
// body or a {"gateway_payload": {...}} wrapper, mirroring how provider
// integrations vary in shape.
func readGatewayPayload(c *gin.Context) (json.RawMessage, error) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return nil, err
	}
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid([]byte(trimmed)) {
		return nil, errors.New("invalid json body")
	}

	var wrapper struct {
		GatewayPayload json.RawMessage `json:"gateway_payload"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && len(wrapper.GatewayPayload) > 0 && string(wrapper.GatewayPayload) != "null" {
		return wrapper.GatewayPayload, nil
	}
	return json.RawMessage(trimmed), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidInvoiceInput), errors.Is(err, usecase.ErrInvalidGatewayPayload):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentAmount):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_AMOUNT", "Payment amount must be positive", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNothingToCollect):
		return pkg.NewDomainErrorSimple("NOTHING_TO_COLLECT", "Invoice has no open balance", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayPaymentDeclined):
		return pkg.NewDomainErrorSimple("GATEWAY_PAYMENT_DECLINED", "The payment was not approved by the provider", http.StatusConflict)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_NOT_CONFIGURED", "Online payments are not configured", http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

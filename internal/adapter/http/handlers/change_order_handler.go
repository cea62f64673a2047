package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "contractor_books/internal/adapter/http/dto/request"
	response "contractor_books/internal/adapter/http/dto/response"
	"contractor_books/internal/usecase"
	"contractor_books/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidChangeOrderPayload = pkg.NewDomainErrorSimple("INVALID_CHANGE_ORDER_INPUT", "Invalid change order payload", http.StatusBadRequest)
	errMissingUserID             = pkg.NewDomainErrorSimple("MISSING_USER_ID", "Missing X-User-ID header", http.StatusBadRequest)
)

// ChangeOrderHandler handles HTTP requests for the change-order approval
// workflow: authoring, the token-keyed approval surface, the internal
// approval shortcut, the expiration sweep and the projection retry.

type ChangeOrderHandler struct {
	usecase usecase.IChangeOrderUseCase
}

func NewChangeOrderHandler(uc usecase.IChangeOrderUseCase) *ChangeOrderHandler {
	return &ChangeOrderHandler{usecase: uc}
}

// CreateChangeOrder authors a pending change order for the contractor
// identified by the X-User-ID header (authentication happens upstream).
func (h *ChangeOrderHandler) CreateChangeOrder(c *gin.Context) {
	userID := strings.TrimSpace(c.GetHeader("X-User-ID"))
	if userID == "" {
		c.JSON(errMissingUserID.HTTPStatus, errMissingUserID.ToHTTPError())
		return
	}

	var payload request.CreateChangeOrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.Create(c.Request.Context(), userID, usecase.CreateChangeOrderCommand{
		ProjectID:       payload.ProjectID,
		Title:           payload.Title,
		Description:     payload.Description,
		Reason:          payload.Reason,
		OriginalAmount:  payload.OriginalAmount,
		ChangeAmount:    payload.ChangeAmount,
		Items:           payload.ToLineItems(),
		ContractorEmail: payload.ContractorEmail,
	})
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromChangeOrder(co, h.usecase.GenerateApprovalURL(co.ApprovalToken), time.Now().UTC()))
}

// GetApprovalPage renders the change order for the token holder. Terminal
// and lapsed records still render; Expired in the payload tells the page
// why responding is no longer possible.
func (h *ChangeOrderHandler) GetApprovalPage(c *gin.Context) {
	co, err := h.usecase.GetByToken(c.Request.Context(), c.Param("token"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	// The token holder already has the token; no approval URL echoed back.
	c.JSON(http.StatusOK, response.FromChangeOrder(co, "", time.Now().UTC()))
}

// RespondByToken records the client decision for the token holder.
func (h *ChangeOrderHandler) RespondByToken(c *gin.Context) {
	var payload request.ClientResponseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.RespondByToken(c.Request.Context(), c.Param("token"), payload.ResolveResponse(), payload.Notes)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co, "", time.Now().UTC()))
}

// ApproveSimple is the internal approval shortcut keyed by document ID.
func (h *ChangeOrderHandler) ApproveSimple(c *gin.Context) {
	var payload request.ApproveSimpleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChangeOrderPayload.HTTPStatus, errInvalidChangeOrderPayload.ToHTTPError())
		return
	}

	co, err := h.usecase.ApproveDirect(c.Request.Context(), c.Param("id"), payload.AcceptPolicies, payload.Notes)
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co, "", time.Now().UTC()))
}

// ExpireSweep transitions every lapsed pending change order to expired.
func (h *ChangeOrderHandler) ExpireSweep(c *gin.Context) {
	count, err := h.usecase.ExpireSweep(c.Request.Context(), time.Now().UTC())
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": count})
}

// RetryProjection re-applies a budget delta whose projection failed after
// the approval was durable.
func (h *ChangeOrderHandler) RetryProjection(c *gin.Context) {
	co, err := h.usecase.RetryBudgetProjection(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapChangeOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChangeOrder(co, "", time.Now().UTC()))
}

func mapChangeOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChangeOrderInput), errors.Is(err, usecase.ErrInvalidChangeOrderID), errors.Is(err, usecase.ErrInvalidClientResponse):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPoliciesNotAccepted):
		return pkg.NewDomainErrorSimple("POLICIES_NOT_ACCEPTED", "Policies must be accepted to approve", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrChangeOrderNotFound):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_FOUND", "Change order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrApprovalExpired):
		return pkg.NewDomainErrorSimple("APPROVAL_EXPIRED", "The approval window for this change order has expired", http.StatusGone)
	case errors.Is(err, usecase.ErrAlreadyResponded):
		return pkg.NewDomainErrorSimple("ALREADY_RESPONDED", "This change order has already been processed", http.StatusConflict)
	case errors.Is(err, usecase.ErrChangeOrderNotApproved):
		return pkg.NewDomainErrorSimple("CHANGE_ORDER_NOT_APPROVED", "Change order is not approved", http.StatusConflict)
	case errors.Is(err, usecase.ErrBudgetAlreadyApplied):
		return pkg.NewDomainErrorSimple("BUDGET_ALREADY_APPLIED", "Budget was already applied for this change order", http.StatusConflict)
	case errors.Is(err, usecase.ErrProjectNotFound):
		return pkg.NewDomainErrorSimple("PROJECT_NOT_FOUND", "Project not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

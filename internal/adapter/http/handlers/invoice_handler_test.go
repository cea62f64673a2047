package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"contractor_books/internal/adapter/http/handlers/mocks"
	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newInvoiceRouter(h *InvoiceHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/invoices", h.CreateInvoice)
	r.GET("/v1/invoices/:id", h.GetInvoice)
	r.POST("/v1/invoices/:id/payments", h.AddPayment)
	r.GET("/v1/invoices/:id/payments", h.ListPayments)
	r.POST("/v1/invoices/:id/mark-paid", h.MarkAsPaid)
	r.POST("/v1/invoices/:id/collect", h.CollectPayment)
	return r
}

func TestInvoiceHandler_CreateInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing user header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"items":[{"description":"labor","quantity":1,"unit_price":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"project_id":"proj-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		inv := entities.Invoice{
			ID:            "inv-1",
			InvoiceNumber: "INV-20260810-001",
			Status:        entities.InvoiceStatusDraft,
			Total:         1100,
			Balance:       1100,
			DueDate:       time.Now().UTC().AddDate(0, 0, 30),
		}
		uc.EXPECT().CreateInvoice(gomock.Any(), "user-1", gomock.Any()).Return(inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices", bytes.NewBufferString(`{"tax_rate":10,"items":[{"description":"labor","quantity":10,"unit_price":100}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-User-ID", "user-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["balance"] != 1100.0 {
			t.Fatalf("expected balance 1100, got %v", body["balance"])
		}
	})
}

func TestInvoiceHandler_GetInvoice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("sent invoice past due reads as overdue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		inv := entities.Invoice{
			ID:      "inv-1",
			Status:  entities.InvoiceStatusSent,
			Total:   1000,
			Balance: 1000,
			DueDate: time.Now().UTC().Add(-24 * time.Hour),
		}
		uc.EXPECT().GetByID(gomock.Any(), "inv-1").Return(inv, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["status"] != "sent" {
			t.Fatalf("persisted status must stay sent, got %v", body["status"])
		}
		if body["effective_status"] != "overdue" {
			t.Fatalf("expected effective status overdue, got %v", body["effective_status"])
		}
	})
}

func TestInvoiceHandler_AddPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("non-positive amount maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().AddPayment(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, entities.Invoice{}, usecase.ErrInvalidPaymentAmount)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{"amount":-50}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body["code"] != "INVALID_PAYMENT_AMOUNT" {
			t.Fatalf("expected INVALID_PAYMENT_AMOUNT, got %v", body["code"])
		}
	})

	t.Run("success returns payment and refreshed ledger", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		p := entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: 200, Method: entities.PaymentMethodCheck}
		inv := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusSent, Total: 1000, AmountPaid: 500, Balance: 500, DueDate: time.Now().UTC().AddDate(0, 0, 10)}
		uc.EXPECT().AddPayment(gomock.Any(), "inv-1", usecase.PaymentCommand{Amount: 200, Method: "check"}).Return(p, inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/payments", bytes.NewBufferString(`{"amount":200,"method":"check"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			Payment map[string]any `json:"payment"`
			Invoice map[string]any `json:"invoice"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if body.Payment["id"] != "pay-1" {
			t.Fatalf("expected payment id pay-1, got %v", body.Payment["id"])
		}
		if body.Invoice["balance"] != 500.0 {
			t.Fatalf("expected balance 500, got %v", body.Invoice["balance"])
		}
	})
}

func TestInvoiceHandler_ListPayments(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc))

	uc.EXPECT().ListPayments(gomock.Any(), "inv-1").Return([]entities.Payment{
		{ID: "pay-1", InvoiceID: "inv-1", Amount: 300},
		{ID: "pay-2", InvoiceID: "inv-1", Amount: 200},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/invoices/inv-1/payments", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body) != 2 {
		t.Fatalf("expected 2 payments, got %d", len(body))
	}
}

func TestInvoiceHandler_MarkAsPaid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
	r := newInvoiceRouter(NewInvoiceHandler(uc))

	now := time.Now().UTC()
	inv := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, Total: 1000, AmountPaid: 1000, Balance: 0, PaidDate: &now, DueDate: now.AddDate(0, 0, 10)}
	uc.EXPECT().MarkAsPaid(gomock.Any(), "inv-1").Return(inv, nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/mark-paid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body["status"] != "paid" || body["balance"] != 0.0 {
		t.Fatalf("expected settled invoice, got status=%v balance=%v", body["status"], body["balance"])
	}
}

func TestInvoiceHandler_CollectPayment(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("nothing to collect maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().CollectOnline(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, entities.Invoice{}, usecase.ErrNothingToCollect)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/collect", bytes.NewBufferString(`{"payment_method_id":"pix"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("gateway not configured maps to 503", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		uc.EXPECT().CollectOnline(gomock.Any(), "inv-1", gomock.Any()).
			Return(entities.Payment{}, entities.Invoice{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/collect", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("wrapped payload is unwrapped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		p := entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Amount: 600, Method: entities.PaymentMethodMercadoPago, Reference: "mp-99"}
		inv := entities.Invoice{ID: "inv-1", Status: entities.InvoiceStatusPaid, Total: 1000, AmountPaid: 1000, Balance: 0, DueDate: time.Now().UTC().AddDate(0, 0, 10)}
		uc.EXPECT().CollectOnline(gomock.Any(), "inv-1", json.RawMessage(`{"payment_method_id":"pix"}`)).Return(p, inv, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/collect", bytes.NewBufferString(`{"gateway_payload":{"payment_method_id":"pix"}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("malformed body maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceLedgerUseCase(ctrl)
		r := newInvoiceRouter(NewInvoiceHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/invoices/inv-1/collect", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

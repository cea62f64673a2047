package request

import (
	"testing"
	"time"
)

func TestCreateInvoiceRequest_ResolveDueDate(t *testing.T) {
	if got := (CreateInvoiceRequest{}).ResolveDueDate(); !got.IsZero() {
		t.Fatalf("expected zero due date, got %v", got)
	}

	due := time.Date(2026, 9, 30, 0, 0, 0, 0, time.UTC)
	r := CreateInvoiceRequest{DueDate: &due}
	if got := r.ResolveDueDate(); !got.Equal(due) {
		t.Fatalf("expected %v, got %v", due, got)
	}
}

func TestAddPaymentRequest_ResolvePaymentDate(t *testing.T) {
	if got := (AddPaymentRequest{}).ResolvePaymentDate(); !got.IsZero() {
		t.Fatalf("expected zero payment date, got %v", got)
	}

	paid := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	r := AddPaymentRequest{Amount: 100, PaymentDate: &paid}
	if got := r.ResolvePaymentDate(); !got.Equal(paid) {
		t.Fatalf("expected %v, got %v", paid, got)
	}
}

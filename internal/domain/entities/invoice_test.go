package entities

import (
	"testing"
	"time"
)

func TestComputeInvoiceTotals(t *testing.T) {
	t.Run("subtotal tax and total", func(t *testing.T) {
		totals := ComputeInvoiceTotals([]LineItem{
			{Description: "labor", Quantity: 10, UnitPrice: 80},
			{Description: "materials", Quantity: 1, UnitPrice: 200},
		}, 10)
		if totals.Subtotal != 1000 {
			t.Fatalf("expected subtotal 1000, got %.2f", totals.Subtotal)
		}
		if totals.Tax != 100 {
			t.Fatalf("expected tax 100, got %.2f", totals.Tax)
		}
		if totals.Total != 1100 {
			t.Fatalf("expected total 1100, got %.2f", totals.Total)
		}
	})

	t.Run("zero tax rate", func(t *testing.T) {
		totals := ComputeInvoiceTotals([]LineItem{{Quantity: 2, UnitPrice: 50}}, 0)
		if totals.Tax != 0 || totals.Total != 100 {
			t.Fatalf("expected tax 0 total 100, got tax=%.2f total=%.2f", totals.Tax, totals.Total)
		}
	})

	t.Run("stale stored line totals are recomputed", func(t *testing.T) {
		totals := ComputeInvoiceTotals([]LineItem{{Quantity: 2, UnitPrice: 50, Total: 999}}, 0)
		if totals.Subtotal != 100 {
			t.Fatalf("expected recomputed subtotal 100, got %.2f", totals.Subtotal)
		}
	})
}

func TestBalanceDue(t *testing.T) {
	if got := BalanceDue(1000, 300); got != 700 {
		t.Fatalf("expected 700, got %.2f", got)
	}
	if got := BalanceDue(1000, 1000); got != 0 {
		t.Fatalf("expected 0, got %.2f", got)
	}
	if got := BalanceDue(1000, 1200); got != 0 {
		t.Fatalf("overpayment must clamp to 0, got %.2f", got)
	}
}

func TestInvoice_EffectiveStatus(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("sent past due reads overdue", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusSent, DueDate: now.Add(-time.Hour)}
		if got := inv.EffectiveStatus(now); got != InvoiceStatusOverdue {
			t.Fatalf("expected overdue, got %s", got)
		}
	})

	t.Run("sent before due stays sent", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusSent, DueDate: now.Add(time.Hour)}
		if got := inv.EffectiveStatus(now); got != InvoiceStatusSent {
			t.Fatalf("expected sent, got %s", got)
		}
	})

	t.Run("paid never reads overdue", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusPaid, DueDate: now.Add(-time.Hour)}
		if got := inv.EffectiveStatus(now); got != InvoiceStatusPaid {
			t.Fatalf("expected paid, got %s", got)
		}
	})

	t.Run("draft never reads overdue", func(t *testing.T) {
		inv := Invoice{Status: InvoiceStatusDraft, DueDate: now.Add(-time.Hour)}
		if got := inv.EffectiveStatus(now); got != InvoiceStatusDraft {
			t.Fatalf("expected draft, got %s", got)
		}
	})
}

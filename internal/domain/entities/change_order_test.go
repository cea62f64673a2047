package entities

import (
	"testing"
	"time"
)

func TestChangeOrder_Expired(t *testing.T) {
	expiresAt := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	co := ChangeOrder{ExpiresAt: expiresAt}

	if co.Expired(expiresAt.Add(-time.Second)) {
		t.Fatalf("before the deadline must not be expired")
	}
	if co.Expired(expiresAt) {
		t.Fatalf("the exact deadline instant is still inside the window")
	}
	if !co.Expired(expiresAt.Add(time.Second)) {
		t.Fatalf("after the deadline must be expired")
	}
}

func TestChangeOrder_Responded(t *testing.T) {
	if (ChangeOrder{}).Responded() {
		t.Fatalf("fresh change order must not read as responded")
	}
	co := ChangeOrder{ClientResponse: ClientResponseDeclined}
	if !co.Responded() {
		t.Fatalf("recorded response must read as responded")
	}
}

func TestNormalizeLineItems(t *testing.T) {
	items, sum := NormalizeLineItems([]LineItem{
		{Description: "labor", Quantity: 10, UnitPrice: 80, Total: 1},
		{Description: "materials", Quantity: 1, UnitPrice: 200},
	})
	if items[0].Total != 800 || items[1].Total != 200 {
		t.Fatalf("expected recomputed totals 800/200, got %.2f/%.2f", items[0].Total, items[1].Total)
	}
	if sum != 1000 {
		t.Fatalf("expected sum 1000, got %.2f", sum)
	}

	empty, sum := NormalizeLineItems(nil)
	if len(empty) != 0 || sum != 0 {
		t.Fatalf("expected empty normalization, got %d items sum %.2f", len(empty), sum)
	}
}

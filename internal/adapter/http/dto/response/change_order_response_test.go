package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"contractor_books/internal/domain/entities"
)

func TestFromChangeOrder_Expired(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	t.Run("pending inside the window", func(t *testing.T) {
		co := entities.ChangeOrder{Status: entities.ChangeOrderStatusPending, ExpiresAt: now.Add(time.Hour)}
		if FromChangeOrder(co, "", now).Expired {
			t.Fatalf("open window must not read as expired")
		}
	})

	t.Run("pending past the window", func(t *testing.T) {
		co := entities.ChangeOrder{Status: entities.ChangeOrderStatusPending, ExpiresAt: now.Add(-time.Hour)}
		if !FromChangeOrder(co, "", now).Expired {
			t.Fatalf("lapsed window must read as expired before the sweep lands")
		}
	})

	t.Run("swept record", func(t *testing.T) {
		co := entities.ChangeOrder{Status: entities.ChangeOrderStatusExpired, ExpiresAt: now.Add(-time.Hour)}
		if !FromChangeOrder(co, "", now).Expired {
			t.Fatalf("swept record must read as expired")
		}
	})

	t.Run("approved record never reads expired", func(t *testing.T) {
		co := entities.ChangeOrder{Status: entities.ChangeOrderStatusApproved, ExpiresAt: now.Add(-time.Hour)}
		if FromChangeOrder(co, "", now).Expired {
			t.Fatalf("terminal approval must not read as expired")
		}
	})
}

func TestFromChangeOrder_TokenNeverSerialized(t *testing.T) {
	now := time.Now().UTC()
	co := entities.ChangeOrder{
		ID:            "co-1",
		Status:        entities.ChangeOrderStatusPending,
		ApprovalToken: "tok-secret",
		ExpiresAt:     now.Add(time.Hour),
	}

	raw, err := json.Marshal(FromChangeOrder(co, "http://localhost:8080/change-orders/approve/tok-secret", now))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(raw), "approval_token") {
		t.Fatalf("approval token field must not be serialized: %s", raw)
	}
	if !strings.Contains(string(raw), "approval_url") {
		t.Fatalf("expected approval url in payload: %s", raw)
	}
}

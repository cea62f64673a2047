package usecase

import "testing"

func TestApprovalTokenIssuer_Issue(t *testing.T) {
	issuer := NewApprovalTokenIssuer("http://localhost:8080")

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		token, err := issuer.Issue()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(token) != 64 {
			t.Fatalf("expected 64 hex chars, got %d", len(token))
		}
		if seen[token] {
			t.Fatalf("duplicate token after %d issues", i)
		}
		seen[token] = true
	}
}

func TestApprovalTokenIssuer_ApprovalURL(t *testing.T) {
	t.Run("joins base and token", func(t *testing.T) {
		issuer := NewApprovalTokenIssuer("https://books.example.com")
		got := issuer.ApprovalURL("abc123")
		want := "https://books.example.com/change-orders/approve/abc123"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})

	t.Run("trailing slash on base is trimmed", func(t *testing.T) {
		issuer := NewApprovalTokenIssuer("https://books.example.com/ ")
		got := issuer.ApprovalURL("abc123")
		want := "https://books.example.com/change-orders/approve/abc123"
		if got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	})
}

func TestTokenMatches(t *testing.T) {
	t.Run("equal tokens", func(t *testing.T) {
		if !TokenMatches("deadbeef", "deadbeef") {
			t.Fatalf("expected match")
		}
	})

	t.Run("different tokens", func(t *testing.T) {
		if TokenMatches("deadbeef", "deadbeee") {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("length mismatch", func(t *testing.T) {
		if TokenMatches("deadbeef", "dead") {
			t.Fatalf("expected mismatch")
		}
	})

	t.Run("empty stored token never matches", func(t *testing.T) {
		if TokenMatches("", "") {
			t.Fatalf("a record without a token must not be reachable by token")
		}
	})
}

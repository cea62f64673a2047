package usecase

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"strings"
)

const approvalTokenBytes = 32

// ApprovalTokenIssuer generates approval tokens and human-facing approval
// URLs.
//
// Tokens are 32 random bytes hex-encoded: an opaque bearer capability, never
// derivable from other change-order fields.

type ApprovalTokenIssuer struct {
	baseURL string
}

func NewApprovalTokenIssuer(baseURL string) *ApprovalTokenIssuer {
	return &ApprovalTokenIssuer{baseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/")}
}

func (i *ApprovalTokenIssuer) Issue() (string, error) {
	buf := make([]byte, approvalTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// ApprovalURL is deterministic given the token and the configured base URL.
func (i *ApprovalTokenIssuer) ApprovalURL(token string) string {
	return fmt.Sprintf("%s/change-orders/approve/%s", i.baseURL, token)
}

// TokenMatches compares a stored token with a presented one in constant
// time. The GSI lookup already resolves the record; this guards the final
// equality against timing probes.
func TokenMatches(stored, presented string) bool {
	if len(stored) == 0 || len(stored) != len(presented) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(stored), []byte(presented)) == 1
}

package notifications

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/smtp"
	"os"
	"strings"

	"contractor_books/internal/domain/entities"
	"contractor_books/internal/usecase/interfaces"
)

var ErrSMTPNotConfigured = errors.New("smtp not configured")

// EmailNotifier sends the response-confirmation email to the contractor.
//
// Delivery is best-effort by contract: the workflow logs a failure here and
// moves on, so this notifier never needs retries or durability.
//
// Mock mode (NOTIFY_MOCK) logs the message instead of dialing SMTP.
//
// Supported env vars:
//   - SMTP_HOST, SMTP_PORT (default: 587)
//   - SMTP_USERNAME, SMTP_PASSWORD
//   - SMTP_FROM (default: SMTP_USERNAME)
//   - NOTIFY_MOCK

type EmailNotifier struct {
	host     string
	port     string
	username string
	password string
	from     string
	mockMode bool
}

var _ interfaces.INotificationPort = (*EmailNotifier)(nil)

func NewEmailNotifierFromEnv() (*EmailNotifier, error) {
	if isNotificationMockEnabled() {
		log.Printf("[notify][smtp] mock mode enabled")
		return &EmailNotifier{mockMode: true}, nil
	}

	host := strings.TrimSpace(os.Getenv("SMTP_HOST"))
	if host == "" {
		return nil, ErrSMTPNotConfigured
	}
	username := strings.TrimSpace(os.Getenv("SMTP_USERNAME"))
	from := strings.TrimSpace(os.Getenv("SMTP_FROM"))
	if from == "" {
		from = username
	}

	return &EmailNotifier{
		host:     host,
		port:     getenvDefault("SMTP_PORT", "587"),
		username: username,
		password: os.Getenv("SMTP_PASSWORD"),
		from:     from,
	}, nil
}

func (n *EmailNotifier) SendResponseConfirmation(_ context.Context, co entities.ChangeOrder, response entities.ClientResponse, contractorEmail string) error {
	subject := fmt.Sprintf("Change order %s %s", co.ChangeOrderNumber, response)
	body := fmt.Sprintf(
		"Change order %s (%s) was %s by the client.\r\nChange amount: %.2f\r\nNew contract total: %.2f\r\n",
		co.ChangeOrderNumber, co.Title, response, co.ChangeAmount, co.NewTotalAmount,
	)

	if n.mockMode {
		log.Printf("[notify][smtp] mock send to=%s subject=%q", contractorEmail, subject)
		return nil
	}

	msg := strings.Join([]string{
		"From: " + n.from,
		"To: " + contractorEmail,
		"Subject: " + subject,
		"",
		body,
	}, "\r\n")

	addr := n.host + ":" + n.port
	var auth smtp.Auth
	if n.username != "" {
		auth = smtp.PlainAuth("", n.username, n.password, n.host)
	}
	if err := smtp.SendMail(addr, auth, n.from, []string{contractorEmail}, []byte(msg)); err != nil {
		log.Printf("[notify][smtp] send failed to=%s err=%v", contractorEmail, err)
		return err
	}
	log.Printf("[notify][smtp] sent to=%s change_order_id=%s response=%s", contractorEmail, co.ID, response)
	return nil
}

func isNotificationMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("NOTIFY_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

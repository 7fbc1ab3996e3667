package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// Message is an outbound email
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Mailer delivers invoice emails. Real delivery goes through an external
// cloud function that is not wired up; the dev mailer logs and reports
// success so the billing flow can be exercised end to end.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// DevMailer logs outbound mail instead of delivering it
type DevMailer struct {
	from   string
	logger *logrus.Logger
}

// NewDevMailer creates a log-only mailer
func NewDevMailer(from string, logger *logrus.Logger) *DevMailer {
	return &DevMailer{from: from, logger: logger}
}

// Send validates the message and logs it. Always succeeds for valid input.
func (m *DevMailer) Send(_ context.Context, msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("recipient address is required")
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("subject is required")
	}

	m.logger.WithFields(logrus.Fields{
		"from":       m.from,
		"to":         msg.To,
		"subject":    msg.Subject,
		"body_bytes": len(msg.HTML),
	}).Info("Invoice email queued (dev mode, not delivered)")

	return nil
}

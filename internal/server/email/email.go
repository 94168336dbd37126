package email

import (
	"context"
	"errors"
	"log/slog"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

var (
	ErrInvalidMailSender    = errors.New("invalid mail sender")
	ErrInvalidMailRecipient = errors.New("invalid mail recipient")
)

// Mailer delivers a notification for a stored contact message. Sends are
// best-effort: callers log failures and move on, so implementations must
// never panic and should bound their own I/O.
type Mailer interface {
	// Enabled reports whether this mailer will actually attempt delivery.
	Enabled() bool

	// SendContactNotification composes and sends the notification for msg.
	SendContactNotification(ctx context.Context, msg *store.ContactMessage) error
}

// NewMailer picks the delivery path from the config. SMTP wins when both
// are configured; with neither, sends become no-ops.
func NewMailer(cfg *Config) Mailer {
	switch {
	case cfg.SMTPConfigured():
		slog.Info("mailer: smtp relay", "config", cfg)
		return NewSMTPMailer(cfg)
	case cfg.SendGridConfigured():
		slog.Info("mailer: sendgrid", "config", cfg)
		return NewSendGridMailer(cfg)
	default:
		slog.Info("mailer: not configured, notifications disabled")
		return &NoopMailer{}
	}
}

// NoopMailer is the disabled path. It is also handed to handlers in tests.
type NoopMailer struct{}

func (m *NoopMailer) Enabled() bool { return false }

func (m *NoopMailer) SendContactNotification(ctx context.Context, msg *store.ContactMessage) error {
	slog.Info("mail not configured, skipping notification", "messageId", msg.ID)
	return nil
}

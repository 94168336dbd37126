package email

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

const sendTimeout = 15 * time.Second

// SMTPMailer delivers notifications through a TLS-secured SMTP relay with
// PLAIN auth, synchronously within the request.
type SMTPMailer struct {
	cfg *Config
}

func NewSMTPMailer(cfg *Config) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) Enabled() bool {
	return m.cfg.SMTPConfigured()
}

func (m *SMTPMailer) SendContactNotification(ctx context.Context, cm *store.ContactMessage) error {
	if m.cfg.From == "" {
		return ErrInvalidMailSender
	}
	if m.cfg.To == "" {
		return ErrInvalidMailRecipient
	}

	text, html, err := composeBodies(cm)
	if err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(m.cfg.From); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMailSender, err)
	}
	if err := msg.To(m.cfg.To); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidMailRecipient, err)
	}
	// Let the recipient reply straight to the submitter. A malformed
	// submitted address is not worth failing the notification over.
	if err := msg.ReplyTo(cm.Email); err != nil {
		slog.Warn("mail: bad reply-to, leaving unset", "email", cm.Email, "error", err)
	}
	msg.Subject(subject(cm))
	msg.SetBodyString(mail.TypeTextPlain, text)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	client, err := mail.NewClient(m.cfg.SMTPHost,
		mail.WithPort(m.cfg.SMTPPort),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.cfg.SMTPUser),
		mail.WithPassword(m.cfg.SMTPPassword),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	slog.Debug("mail sent", "to", m.cfg.To, "messageId", cm.ID)
	return nil
}

package email

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

// SendGridMailer delivers notifications through the SendGrid API instead of
// a raw SMTP relay.
type SendGridMailer struct {
	cfg *Config
}

func NewSendGridMailer(cfg *Config) *SendGridMailer {
	return &SendGridMailer{cfg: cfg}
}

func (m *SendGridMailer) Enabled() bool {
	return m.cfg.SendGridConfigured()
}

func (m *SendGridMailer) SendContactNotification(ctx context.Context, cm *store.ContactMessage) error {
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

	from := sgmail.NewEmail("", m.cfg.From)
	to := sgmail.NewEmail("", m.cfg.To)
	message := sgmail.NewSingleEmail(from, subject(cm), to, text, html)
	message.SetReplyTo(sgmail.NewEmail(cm.Name, cm.Email))

	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	client := sendgrid.NewSendClient(m.cfg.SendGridAPIKey)
	resp, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("sendgrid send: status %d: %s", resp.StatusCode, resp.Body)
	}

	slog.Debug("mail sent", "to", m.cfg.To, "status", resp.StatusCode, "messageId", cm.ID)
	return nil
}

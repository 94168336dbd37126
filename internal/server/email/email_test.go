package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

func TestNewMailerSelection(t *testing.T) {
	smtp := &Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
	}
	assert.IsType(t, &SMTPMailer{}, NewMailer(smtp))

	sendgrid := &Config{SendGridAPIKey: "SG.test"}
	assert.IsType(t, &SendGridMailer{}, NewMailer(sendgrid))

	// SMTP wins when both are configured.
	both := &Config{
		SMTPHost:       "smtp.example.com",
		SMTPPort:       587,
		SMTPUser:       "mailer",
		SMTPPassword:   "secret",
		SendGridAPIKey: "SG.test",
	}
	assert.IsType(t, &SMTPMailer{}, NewMailer(both))

	assert.IsType(t, &NoopMailer{}, NewMailer(&Config{}))
}

func TestSMTPConfiguredNeedsAllCredentials(t *testing.T) {
	cfg := &Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
	}
	assert.True(t, cfg.SMTPConfigured())

	partial := *cfg
	partial.SMTPPassword = ""
	assert.False(t, partial.SMTPConfigured())

	partial = *cfg
	partial.SMTPPort = 0
	assert.False(t, partial.SMTPConfigured())
}

func TestNoopMailer(t *testing.T) {
	m := &NoopMailer{}
	assert.False(t, m.Enabled())

	msg := store.NewContactMessage("Ada", "ada@example.com", "", "", "hi")
	assert.NoError(t, m.SendContactNotification(context.Background(), msg))
}

func TestSMTPMailerRequiresAddresses(t *testing.T) {
	cfg := &Config{
		SMTPHost:     "smtp.example.com",
		SMTPPort:     587,
		SMTPUser:     "mailer",
		SMTPPassword: "secret",
	}
	m := NewSMTPMailer(cfg)
	msg := store.NewContactMessage("Ada", "ada@example.com", "", "", "hi")

	err := m.SendContactNotification(context.Background(), msg)
	assert.ErrorIs(t, err, ErrInvalidMailSender)

	cfg.From = "noreply@example.com"
	err = m.SendContactNotification(context.Background(), msg)
	assert.ErrorIs(t, err, ErrInvalidMailRecipient)
}

func TestComposeBodies(t *testing.T) {
	msg := store.NewContactMessage("Ada", "ada@example.com", "+1 555 0100", "", "hello <world>")

	text, html, err := composeBodies(msg)
	require.NoError(t, err)

	assert.Contains(t, text, "Name: Ada")
	assert.Contains(t, text, "Email: ada@example.com")
	assert.Contains(t, text, "Phone: +1 555 0100")
	assert.NotContains(t, text, "Address:")
	assert.Contains(t, text, "hello <world>")

	assert.Contains(t, html, "Ada")
	assert.NotContains(t, html, "Address")
	// Submitted fields must be escaped in the HTML rendering.
	assert.Contains(t, html, "hello &lt;world&gt;")
	assert.NotContains(t, html, "hello <world>")
}

func TestMaskSecret(t *testing.T) {
	assert.Empty(t, maskSecret(""))
	assert.Equal(t, "*****", maskSecret("abcd"))
	assert.Equal(t, "supe*****", maskSecret("supersecret"))
}

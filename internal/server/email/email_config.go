package email

import "log/slog"

// Config carries the outbound mail settings. Everything is optional; an
// empty config disables notifications entirely.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string

	SendGridAPIKey string

	// From is the envelope sender, To the notification recipient.
	From string
	To   string
}

// SMTPConfigured reports whether all four relay credentials are present.
// A partially filled set counts as not configured.
func (c *Config) SMTPConfigured() bool {
	return c.SMTPHost != "" && c.SMTPPort != 0 && c.SMTPUser != "" && c.SMTPPassword != ""
}

func (c *Config) SendGridConfigured() bool {
	return c.SendGridAPIKey != ""
}

func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("smtp_host", c.SMTPHost),
		slog.Int("smtp_port", c.SMTPPort),
		slog.String("smtp_user", c.SMTPUser),
		slog.String("smtp_password", maskSecret(c.SMTPPassword)),
		slog.String("sendgrid_api_key", maskSecret(c.SendGridAPIKey)),
		slog.String("from", c.From),
		slog.String("to", c.To),
	)
}

func maskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "*****"
	}
	return s[:4] + "*****"
}

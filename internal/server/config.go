package server

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/email"
)

const DefaultAddr = "0.0.0.0:8001"

type Config struct {
	HTTP  HTTPConfig
	Mongo MongoConfig

	// CORSOrigins is the cross-origin allow-list. ["*"] allows everything.
	CORSOrigins []string

	Email email.Config
}

type HTTPConfig struct {
	Addr string
}

type MongoConfig struct {
	URL    string
	DBName string
}

func (c MongoConfig) LogValue() slog.Value {
	return slog.GroupValue(
		// The URL may embed credentials, keep it out of the logs.
		slog.String("db", c.DBName),
	)
}

// LoadConfig reads the full configuration from the environment. It is read
// once, at startup.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		HTTP: HTTPConfig{
			Addr: envOr("BIND_ADDR", DefaultAddr),
		},
		Mongo: MongoConfig{
			URL:    os.Getenv("MONGO_URL"),
			DBName: os.Getenv("DB_NAME"),
		},
		CORSOrigins: splitOrigins(envOr("CORS_ORIGINS", "*")),
		Email: email.Config{
			SMTPHost:       os.Getenv("SMTP_HOST"),
			SMTPUser:       os.Getenv("SMTP_USER"),
			SMTPPassword:   os.Getenv("SMTP_PASSWORD"),
			SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
			From:           os.Getenv("CONTACT_FROM"),
			To:             os.Getenv("CONTACT_EMAIL"),
		},
	}

	if port := os.Getenv("SMTP_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SMTP_PORT %q: %w", port, err)
		}
		cfg.Email.SMTPPort = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate fails fast on anything the process cannot run without. Mail
// settings are deliberately not validated here; missing credentials just
// disable notifications.
func (c *Config) Validate() error {
	if c.Mongo.URL == "" {
		return fmt.Errorf("MONGO_URL is required")
	}
	if c.Mongo.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package server

import (
	"context"
	"fmt"

	"github.com/masfiqurnehal/portfolio-backend/internal/server/email"
	"github.com/masfiqurnehal/portfolio-backend/internal/server/store"
)

// Services holds everything the handlers need, wired once at startup.
type Services struct {
	Store  *store.Store
	Mailer email.Mailer
}

func NewServices(ctx context.Context, config *Config) (*Services, error) {
	st, err := store.New(ctx, config.Mongo.URL, config.Mongo.DBName)
	if err != nil {
		return nil, fmt.Errorf("create store: %w", err)
	}

	return &Services{
		Store:  st,
		Mailer: email.NewMailer(&config.Email),
	}, nil
}

func (s *Services) Shutdown(ctx context.Context) error {
	if err := s.Store.Close(ctx); err != nil {
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

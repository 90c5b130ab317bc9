package app

import (
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/store"
)

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	store   store.Store
	alerter board.Alerter
	logger  *slog.Logger
}

// WithStore uses s instead of opening the configured backend. The App takes
// ownership and closes it.
func WithStore(s store.Store) Option {
	return func(cfg *appConfig) {
		cfg.store = s
	}
}

// WithAlerter sets where persistence failures are surfaced
func WithAlerter(a board.Alerter) Option {
	return func(cfg *appConfig) {
		cfg.alerter = a
	}
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

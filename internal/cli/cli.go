// Package cli holds what every todoboard subcommand shares: the board
// instance, output formatting, exit codes and argument resolution.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/logging"
)

type contextKey struct{}

// WithApp attaches an already built App to ctx. Commands run under such a
// context use it instead of loading configuration, and leave it open.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, contextKey{}, a)
}

// CLI represents the CLI application context
type CLI struct {
	App *app.App

	owned   bool
	logFile io.Closer
}

// GetCLIFromContext returns a CLI for the App attached to ctx, or builds one
// from the user's configuration
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(contextKey{}).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}
	return NewCLI(ctx)
}

// NewCLI loads configuration, starts file logging and opens the configured
// backend
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, &ExitError{Code: ExitUsage, Err: fmt.Errorf("failed to load configuration: %w", err)}
	}

	logFile, err := logging.Init(cfg.Level())
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	application, err := app.New(ctx, cfg, app.WithLogger(slog.Default()))
	if err != nil {
		_ = logFile.Close()
		return nil, fmt.Errorf("failed to open board: %w", err)
	}

	return &CLI{
		App:     application,
		owned:   true,
		logFile: logFile,
	}, nil
}

// Close cleans up CLI resources. An App taken from the context is left open.
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return errors.Join(c.App.Close(), c.logFile.Close())
}

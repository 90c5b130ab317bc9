// Package app wires the configured persistence binding to the board
// reconciler. It is the one place that knows about every backend.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/realtime"
	"github.com/thenoetrevino/todoboard/internal/rest"
	"github.com/thenoetrevino/todoboard/internal/store"
)

// App holds the board and the binding behind it.
// This is the main application container that manages their lifecycles.
type App struct {
	Config *config.Config
	Board  *board.Reconciler

	store  store.Store
	live   bool
	logger *slog.Logger
}

// New opens the backend selected by cfg and builds a reconciler over it.
// A realtime backend whose daemon is unreachable degrades to the local
// store; the board is then kept current by polling.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*App, error) {
	ac := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(ac)
	}

	s := ac.store
	if s == nil {
		var err error
		s, err = openStore(ctx, cfg, ac.logger)
		if err != nil {
			return nil, err
		}
	}

	_, live := s.(store.Subscriber)

	boardOpts := []board.Option{
		board.WithLogger(ac.logger),
		board.WithRefreshAfterWrite(!live),
	}
	if ac.alerter != nil {
		boardOpts = append(boardOpts, board.WithAlerter(ac.alerter))
	}

	return &App{
		Config: cfg,
		Board:  board.New(s, boardOpts...),
		store:  s,
		live:   live,
		logger: ac.logger,
	}, nil
}

// openStore constructs the binding named by cfg.Backend
func openStore(ctx context.Context, cfg *config.Config, logger *slog.Logger) (store.Store, error) {
	switch cfg.Backend {
	case config.BackendLocal:
		repo, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		logger.Info("using local board", "path", cfg.DBPath)
		return repo, nil

	case config.BackendREST:
		client, err := rest.New(cfg.APIURL, rest.WithTimeout(cfg.Timeout), rest.WithLogger(logger))
		if err != nil {
			return nil, err
		}
		logger.Info("using remote board", "url", cfg.APIURL)
		return client, nil

	case config.BackendRealtime:
		repo, err := database.Open(ctx, cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		live, err := realtime.Connect(ctx, repo, cfg.SocketPath, cfg.Board, realtime.WithLogger(logger))
		if err != nil {
			// Daemon may not be available, log warning but continue
			daemonErr := events.ClassifyDaemonError(err)
			logger.Warn("failed to connect to daemon", "message", daemonErr.Message, "hint", daemonErr.Hint)
			logger.Info("continuing without live updates")
			return repo, nil
		}
		logger.Info("using live board", "path", cfg.DBPath, "socket", cfg.SocketPath, "board", cfg.Board)
		return live, nil

	default:
		return nil, fmt.Errorf("%w %q", config.ErrUnknownBackend, cfg.Backend)
	}
}

// Store returns the persistence binding
func (a *App) Store() store.Store {
	return a.store
}

// Live reports whether the binding pushes changes, so the board needs no
// polling or refresh after writes
func (a *App) Live() bool {
	return a.live
}

// Watch keeps the board current until ctx is done
func (a *App) Watch(ctx context.Context) error {
	return a.Board.Watch(ctx, a.Config.PollInterval)
}

// Close releases the binding
func (a *App) Close() error {
	if err := a.store.Close(); err != nil {
		a.logger.Error("error closing store", "error", err)
		return fmt.Errorf("close store: %w", err)
	}
	return nil
}

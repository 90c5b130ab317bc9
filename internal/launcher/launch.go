// Package launcher starts the interactive board
package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/todoboard/internal/app"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/tui"
)

// Launch starts the TUI application
func Launch() error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logging to file before anything else touches the board
	logFile, err := logging.Init(cfg.Level())
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	defer func() {
		_ = logFile.Close()
	}()

	bridge := tui.NewBridge()
	application, err := app.New(ctx, cfg, app.WithAlerter(bridge), app.WithLogger(slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing board", "error", err)
		}
	}()

	application.Board.OnChange(bridge.BoardChanged)

	// A failed first load is alerted through the bridge. Watch keeps
	// fetching and seeds the default columns if the first snapshot it
	// gets is empty
	if err := application.Board.Load(ctx); err != nil {
		slog.Warn("initial board load failed", "error", err)
	}

	runCtx, stop := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(runCtx)
	g.Go(func() error {
		return application.Watch(gctx)
	})

	model := tui.New(runCtx, application.Board, cfg, bridge, tui.WithLogger(slog.Default()))
	_, runErr := tea.NewProgram(model, tea.WithContext(runCtx)).Run()

	if ctx.Err() != nil {
		slog.Info("shutdown signal received, cleaning up")
	}
	stop()
	if err := g.Wait(); err != nil {
		slog.Error("board watch ended", "error", err)
	}

	if runErr != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", runErr)
	}
	return nil
}

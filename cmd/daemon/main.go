// Command todoboard-daemon relays board change events between todoboard
// clients sharing a local database
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/daemon"
	"github.com/thenoetrevino/todoboard/internal/logging"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Under systemd stderr goes to the journal; the log file is optional
	if logFile, err := logging.Init(cfg.Level()); err != nil {
		slog.Warn("logging to stderr", "error", err)
	} else {
		defer func() {
			_ = logFile.Close()
		}()
	}

	// Create and start the daemon server
	server, err := daemon.NewServer(cfg.SocketPath, daemon.WithLogger(slog.Default()))
	if err != nil {
		slog.Error("failed to create daemon", "error", err)
		os.Exit(1)
	}

	slog.Info("todoboard daemon starting", "socket_path", cfg.SocketPath, "pid", os.Getpid())

	// Start the daemon (blocks until shutdown)
	if err := server.Start(ctx); err != nil {
		slog.Error("daemon error", "error", err)
		os.Exit(1)
	}

	slog.Info("todoboard daemon shutting down gracefully")
}

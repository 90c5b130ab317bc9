package board

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
	"github.com/thenoetrevino/todoboard/internal/models"
)

// WatchCmd returns the board watch subcommand
func WatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the board again whenever it changes",
		Long: `Print the board, then print it again after every change until
interrupted. Live backends push changes; others are polled.

Examples:
  todoboard board watch

  # One JSON document per change, for scripts
  todoboard board watch --json

  # Stop after a minute
  todoboard board watch --timeout 1m
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runWatch)),
	}

	cmd.Flags().Bool("raw", false, "Print Markdown without rendering it")
	cmd.Flags().Int("width", DefaultWidth, "Word-wrap width for rendered output")
	cmd.Flags().Duration("timeout", 0, "Stop watching after this long (0 = until interrupted)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runWatch(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	if timeout, ok := args.Flags["timeout"].(time.Duration); ok && timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var last string
	emit := func() {
		view := boardView(c, args)
		if view.Pretty() == last {
			return
		}
		last = view.Pretty()
		if err := args.Formatter.Success(view); err != nil {
			_ = args.Formatter.Error("OUTPUT_ERROR", err.Error())
		}
	}

	emit()
	stop := c.App.Board.OnChange(func([]*models.Column) { emit() })
	defer stop()

	if err := c.App.Watch(ctx); err != nil {
		return nil, err
	}
	return nil, nil
}

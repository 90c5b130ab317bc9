package board

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// SeedCmd returns the board seed subcommand
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create the default columns if the board is empty",
		Long: `Create "doing" and "done today" when the board has no columns.
A board that already has columns is left alone, so this is safe to repeat.

Examples:
  todoboard board seed
  todoboard board seed --json
`,
		RunE: handler.Command(handler.HandlerFunc(runSeed), handler.RefreshBoard),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

type seedResult struct {
	Seeded bool `json:"seeded"`
	*cli.BoardView
}

func (r *seedResult) Pretty() string {
	if r.Seeded {
		return (&cli.Message{Text: "Created the default columns"}).Pretty()
	}
	return "Board already has columns, nothing to do"
}

func runSeed(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	wasEmpty := len(c.App.Board.View()) == 0

	if err := c.App.Board.SeedDefaults(ctx); err != nil {
		return nil, err
	}

	return &seedResult{
		Seeded:    wasEmpty,
		BoardView: cli.NewBoardView(c.App.Board.View(), ""),
	}, nil
}

package column

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// ToggleCmd returns the column toggle subcommand
func ToggleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "toggle",
		Short: "Collapse or expand a column",
		Long: `Collapse an expanded column or expand a collapsed one. Collapsed
columns show only their header in the board view.

Examples:
  todoboard column toggle --column="done today"
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runToggle)),
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runToggle(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}

	if err := c.App.Board.ToggleColumn(ctx, col.ID); err != nil {
		return nil, err
	}

	action := "collapsed"
	if col.Collapsed {
		action = "expanded"
	}
	return &cli.Message{
		ID:     col.ID.String(),
		Action: action,
		Text:   fmt.Sprintf("Column '%s' %s", col.Name, action),
	}, nil
}

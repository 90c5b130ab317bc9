package column

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
	"github.com/thenoetrevino/todoboard/internal/models"
)

// MoveCmd returns the column move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a column to another position",
		Long: `Move a column to where another column is, shifting the columns in
between. Give the destination as a column (--to) or as a 0-based
position (--index). Positions past the end move the column last.

Examples:
  # Put "done today" where "doing" is
  todoboard column move --column="done today" --to="doing"

  # Make a column the first one
  todoboard column move --column="review" --index=0
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runMove)),
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Destination, one of
	cmd.Flags().String("to", "", "Column whose position to take")
	cmd.Flags().Int("index", 0, "0-based position to move to")
	cmd.MarkFlagsOneRequired("to", "index")
	cmd.MarkFlagsMutuallyExclusive("to", "index")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	columns := c.App.Board.View()

	col, err := cli.ResolveColumn(columns, args.GetString("column", ""))
	if err != nil {
		return nil, err
	}

	target, err := moveTarget(columns, args)
	if err != nil {
		return nil, err
	}

	if err := c.App.Board.ReorderColumns(ctx, col.ID, target.ID); err != nil {
		return nil, err
	}

	return &cli.Message{
		ID:     col.ID.String(),
		Action: "moved",
		Text:   fmt.Sprintf("Column '%s' moved to position %d", col.Name, indexOf(columns, target)),
	}, nil
}

// moveTarget resolves --to or --index to the column whose slot is taken
func moveTarget(columns []*models.Column, args *handler.Arguments) (*models.Column, error) {
	if args.Has("to") {
		return cli.ResolveColumn(columns, args.GetString("to", ""))
	}

	index, err := handler.NewFlagParser(args.GetCmd()).ParsePosition("index")
	if err != nil {
		return nil, err
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("%w: the board has no columns", cli.ErrValidation)
	}
	return columns[min(*index, len(columns)-1)], nil
}

func indexOf(columns []*models.Column, col *models.Column) int {
	for i, c := range columns {
		if c.ID == col.ID {
			return i
		}
	}
	return -1
}

package column

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// CreateCmd returns the column create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new column",
		Long: `Create a new column at the right end of the board.

Examples:
  # Create column (human-readable output)
  todoboard column create --name="review"

  # JSON output for agents
  todoboard column create --name="review" --json

  # Quiet mode for bash capture
  COLUMN_ID=$(todoboard column create --name="review" --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runCreate)),
	}

	// Required flags
	cmd.Flags().String("name", "", "Column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	name, err := handler.NewFlagParser(args.GetCmd()).ParseString("name")
	if err != nil {
		return nil, err
	}

	id, err := c.App.Board.CreateColumn(ctx, name)
	if err != nil {
		return nil, err
	}

	return &cli.Message{
		ID:     id.String(),
		Action: "created",
		Text:   fmt.Sprintf("Column '%s' created (ID: %s)", name, id),
	}, nil
}

package column

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
	"github.com/thenoetrevino/todoboard/internal/cli/styles"
)

// DeleteCmd returns the column delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a column",
		Long: `Delete a column (requires confirmation unless --force, --quiet or --json).

Warning: Deleting a column deletes every card in it.

Examples:
  # Delete with confirmation
  todoboard column delete --column="review"

  # Skip confirmation
  todoboard column delete --column=<id> --force
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}

	confirmed, err := args.Confirm(
		fmt.Sprintf("Delete column '%s'?", col.Name),
		styles.Warning(fmt.Sprintf("Its %d cards will be deleted too.", col.CardCount())),
	)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		fmt.Fprintln(args.GetCmd().OutOrStdout(), "Cancelled")
		return nil, nil
	}

	if err := c.App.Board.DeleteColumn(ctx, col.ID); err != nil {
		return nil, err
	}

	if args.Formatter.Quiet {
		return nil, nil
	}
	return &cli.Message{
		ID:     col.ID.String(),
		Action: "deleted",
		Text:   fmt.Sprintf("Column '%s' deleted", col.Name),
	}, nil
}

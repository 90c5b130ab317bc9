package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// DeleteCmd returns the card delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a card",
		Long: `Delete a card (requires confirmation unless --force, --quiet or --json).

Examples:
  todoboard card delete --column="done today" --card=1
  todoboard card delete --column=<id> --card=<id> --force
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runDelete)),
	}

	cmd.Flags().String("column", "", "Column ID or name (required)")
	requireFlag(cmd, "column")
	cmd.Flags().String("card", "", "Card ID or 1-based position (required)")
	requireFlag(cmd, "card")
	cmd.Flags().Bool("force", false, "Skip confirmation")

	addOutputFlags(cmd, "Minimal output")

	return cmd
}

func runDelete(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}
	card, err := cli.ResolveCard(col, args.GetString("card", ""))
	if err != nil {
		return nil, err
	}

	confirmed, err := args.Confirm(fmt.Sprintf("Delete card from '%s'?", col.Name), card.Text)
	if err != nil {
		return nil, err
	}
	if !confirmed {
		fmt.Fprintln(args.GetCmd().OutOrStdout(), "Cancelled")
		return nil, nil
	}

	if err := c.App.Board.DeleteCard(ctx, col.ID, card.ID); err != nil {
		return nil, err
	}

	if args.Formatter.Quiet {
		return nil, nil
	}
	return &cli.Message{
		ID:     card.ID.String(),
		Action: "deleted",
		Text:   fmt.Sprintf("Card %s deleted from '%s'", card.ID, col.Name),
	}, nil
}

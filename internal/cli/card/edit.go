package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// EditCmd returns the card edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replace a card's text",
		Long: `Replace a card's text. The card keeps its position.

Examples:
  todoboard card edit --column="doing" --card=2 --text="write release notes for v2"
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runEdit)),
	}

	cmd.Flags().String("column", "", "Column ID or name (required)")
	requireFlag(cmd, "column")
	cmd.Flags().String("card", "", "Card ID or 1-based position (required)")
	requireFlag(cmd, "card")
	cmd.Flags().String("text", "", "New card text (required)")
	requireFlag(cmd, "text")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runEdit(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	text, err := handler.NewFlagParser(args.GetCmd()).ParseString("text")
	if err != nil {
		return nil, err
	}

	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}
	card, err := cli.ResolveCard(col, args.GetString("card", ""))
	if err != nil {
		return nil, err
	}

	if err := c.App.Board.UpdateCard(ctx, col.ID, card.ID, text); err != nil {
		return nil, err
	}

	return &cli.Message{
		ID:     card.ID.String(),
		Action: "updated",
		Text:   fmt.Sprintf("Card %s in '%s' updated", card.ID, col.Name),
	}, nil
}

package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// AddCmd returns the card add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a card to the bottom of a column",
		Long: `Add a card to the bottom of a column.

Examples:
  todoboard card add --column="doing" --text="write release notes"

  # Quiet mode for bash capture
  CARD_ID=$(todoboard card add --column="doing" --text="review PR" --quiet)
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runAdd)),
	}

	cmd.Flags().String("column", "", "Column ID or name (required)")
	requireFlag(cmd, "column")
	cmd.Flags().String("text", "", "Card text (required)")
	requireFlag(cmd, "text")

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runAdd(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	text, err := handler.NewFlagParser(args.GetCmd()).ParseString("text")
	if err != nil {
		return nil, err
	}

	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}

	id, err := c.App.Board.AddCard(ctx, col.ID, text)
	if err != nil {
		return nil, err
	}

	return &cli.Message{
		ID:     id.String(),
		Action: "added",
		Text:   fmt.Sprintf("Card added to '%s' at position %d (ID: %s)", col.Name, col.CardCount()+1, id),
	}, nil
}

package card

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// MoveCmd returns the card move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Reorder a card or move it to another column",
		Long: `Move a card. Within one column, --index gives the 0-based position
to move it to. Moving to another column appends the card at the bottom and
gives it a new ID; --index is ignored.

Examples:
  # Make the third card of "doing" the first
  todoboard card move --from="doing" --card=3 --index=0

  # Finish a card
  todoboard card move --from="doing" --card=1 --to="done today"
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runMove)),
	}

	cmd.Flags().String("from", "", "Column ID or name holding the card (required)")
	requireFlag(cmd, "from")
	cmd.Flags().String("card", "", "Card ID or 1-based position (required)")
	requireFlag(cmd, "card")
	cmd.Flags().String("to", "", "Destination column ID or name (default: same column)")
	cmd.Flags().Int("index", 0, "0-based position within the column")
	cmd.MarkFlagsOneRequired("to", "index")

	addOutputFlags(cmd, "Minimal output (card ID only)")

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	columns := c.App.Board.View()

	from, err := cli.ResolveColumn(columns, args.GetString("from", ""))
	if err != nil {
		return nil, err
	}
	card, err := cli.ResolveCard(from, args.GetString("card", ""))
	if err != nil {
		return nil, err
	}

	to := from
	if args.Has("to") {
		if to, err = cli.ResolveColumn(columns, args.GetString("to", "")); err != nil {
			return nil, err
		}
	}

	index, err := handler.NewFlagParser(args.GetCmd()).ParsePosition("index")
	if err != nil {
		return nil, err
	}

	newID, err := c.App.Board.MoveCard(ctx, board.MoveCardRequest{
		From:        from.ID,
		To:          to.ID,
		CardID:      card.ID,
		TargetIndex: index,
	})
	if err != nil {
		return nil, err
	}

	if to.ID == from.ID && index != nil {
		return &cli.Message{
			ID:     newID.String(),
			Action: "reordered",
			Text:   fmt.Sprintf("Card moved to position %d in '%s'", min(*index, from.CardCount()-1)+1, from.Name),
		}, nil
	}
	return &cli.Message{
		ID:     newID.String(),
		Action: "moved",
		Text:   fmt.Sprintf("Card moved from '%s' to '%s' (new ID: %s)", from.Name, to.Name, newID),
	}, nil
}

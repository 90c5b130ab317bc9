package column

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
	"github.com/thenoetrevino/todoboard/internal/cli/styles"
)

// ListCmd returns the column list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List columns",
		Long: `List all columns in display order.

Examples:
  todoboard column list
  todoboard column list --json
  todoboard column list --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	addOutputFlags(cmd, "Minimal output (IDs only)")

	return cmd
}

type columnList struct {
	*cli.BoardView
}

func (l columnList) Pretty() string {
	if len(l.Columns) == 0 {
		return "No columns"
	}
	var sb strings.Builder
	sb.WriteString(styles.TitleStyle.Render("Columns:"))
	for i, col := range l.Columns {
		state := ""
		if col.Collapsed {
			state = " [collapsed]"
		}
		fmt.Fprintf(&sb, "\n  %d. %s (%d cards)%s %s", i+1, col.Name, len(col.Cards), state,
			styles.SubtitleStyle.Render("ID: "+col.ID))
	}
	return sb.String()
}

func runList(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return columnList{cli.NewBoardView(c.App.Board.View(), "")}, nil
}

package board

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// DefaultWidth is the word-wrap width for rendered output
const DefaultWidth = 80

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print every column and its cards",
		Long: `Print the board in display order. An empty board gets the default
columns ("doing" and "done today") first.

Examples:
  # Rendered Markdown
  todoboard board show

  # Raw Markdown, e.g. for a notes file
  todoboard board show --raw > board.md

  # JSON output for agents
  todoboard board show --json

  # Quiet mode (one column ID per line)
  todoboard board show --quiet
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runShow)),
	}

	cmd.Flags().Bool("raw", false, "Print Markdown without rendering it")
	cmd.Flags().Int("width", DefaultWidth, "Word-wrap width for rendered output")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	return boardView(c, args), nil
}

// boardView renders the current view as --raw and --width ask
func boardView(c *cli.CLI, args *handler.Arguments) *cli.BoardView {
	columns := c.App.Board.View()

	md := cli.BoardMarkdown(columns)
	rendered := md
	if !args.GetBool("raw") {
		rendered = cli.RenderMarkdown(md, args.GetInt("width", DefaultWidth))
	}
	return cli.NewBoardView(columns, rendered)
}

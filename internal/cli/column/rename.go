package column

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli"
	"github.com/thenoetrevino/todoboard/internal/cli/handler"
)

// RenameCmd returns the column rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename a column",
		Long: `Rename a column. Its cards and position are untouched.

Examples:
  todoboard column rename --column="doing" --name="in progress"
  todoboard column rename --column=<id> --name="blocked" --json
`,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runRename)),
	}

	// Required flags
	cmd.Flags().String("column", "", "Column ID or name (required)")
	if err := cmd.MarkFlagRequired("column"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	cmd.Flags().String("name", "", "New column name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	addOutputFlags(cmd, "Minimal output (ID only)")

	return cmd
}

func runRename(ctx context.Context, c *cli.CLI, args *handler.Arguments) (any, error) {
	name, err := handler.NewFlagParser(args.GetCmd()).ParseString("name")
	if err != nil {
		return nil, err
	}

	col, err := cli.ResolveColumn(c.App.Board.View(), args.GetString("column", ""))
	if err != nil {
		return nil, err
	}

	if err := c.App.Board.RenameColumn(ctx, col.ID, name); err != nil {
		return nil, err
	}

	return &cli.Message{
		ID:     col.ID.String(),
		Action: "renamed",
		Text:   fmt.Sprintf("Column '%s' renamed to '%s'", col.Name, name),
	}, nil
}

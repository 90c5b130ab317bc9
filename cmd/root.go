// Package cmd assembles the todoboard command tree
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/todoboard/internal/cli/board"
	"github.com/thenoetrevino/todoboard/internal/cli/card"
	"github.com/thenoetrevino/todoboard/internal/cli/column"
	"github.com/thenoetrevino/todoboard/internal/cli/styles"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/launcher"
)

// NewRootCmd builds the todoboard command. Without a subcommand it opens
// the interactive board.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "todoboard",
		Short: "todoboard - A terminal kanban board",
		Long: `todoboard is a terminal kanban board. Columns hold ordered cards that
can be added, edited, reordered and moved between columns, from the
interactive board or from scripts.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A broken config is reported by the command itself
			if cfg, err := config.Load(); err == nil {
				styles.Init(cfg.ColorScheme)
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch()
		},
	}

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(column.ColumnCmd())
	rootCmd.AddCommand(card.CardCmd())

	return rootCmd
}

// Execute runs the command tree
func Execute() error {
	return NewRootCmd().Execute()
}

// Package board implements `todoboard board`: showing, watching and seeding
// the whole board
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Show and watch the board",
	}

	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(WatchCmd())
	cmd.AddCommand(SeedCmd())

	return cmd
}

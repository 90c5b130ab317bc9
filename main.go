package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/todoboard/cmd"
	"github.com/thenoetrevino/todoboard/internal/cli"
)

func main() {
	if err := cmd.Execute(); err != nil {
		// Subcommands report their own failures; only launch and usage
		// errors reach here unprinted
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.ExitCode(err))
	}
}

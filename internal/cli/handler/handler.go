// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/cli"
)

// Handler defines the interface for command execution
type Handler interface {
	// Execute runs the command against an open board
	Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ctx context.Context, c *cli.CLI, args *Arguments) (any, error)

// Execute implements Handler
func (f HandlerFunc) Execute(ctx context.Context, c *cli.CLI, args *Arguments) (any, error) {
	return f(ctx, c, args)
}

// Arguments captures parsed CLI arguments and flags
type Arguments struct {
	Flags     map[string]any
	Args      []string
	Formatter *cli.OutputFormatter
	cmd       *cobra.Command
}

// GetCmd returns the cobra command for access to flag parsing utilities
func (a *Arguments) GetCmd() *cobra.Command {
	return a.cmd
}

// Prepare readies the board before a handler runs
type Prepare func(ctx context.Context, c *cli.CLI) error

// LoadBoard fetches the board, seeding the default columns when it is empty
func LoadBoard(ctx context.Context, c *cli.CLI) error {
	return c.App.Board.Load(ctx)
}

// RefreshBoard fetches the board without seeding
func RefreshBoard(ctx context.Context, c *cli.CLI) error {
	return c.App.Board.Refresh(ctx)
}

// Command wraps common command execution logic: it opens the board, runs
// prepare and the handler, formats the result and maps failures to exit codes.
// Returns a cobra RunE compatible function.
func Command(handler Handler, prepare Prepare) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		jsonOutput, _ := cmd.Flags().GetBool("json")
		quietMode, _ := cmd.Flags().GetBool("quiet")
		formatter := &cli.OutputFormatter{
			JSON:  jsonOutput,
			Quiet: quietMode,
			Out:   cmd.OutOrStdout(),
			Err:   cmd.ErrOrStderr(),
		}

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			return report(formatter, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("error closing CLI", "error", err)
			}
		}()

		if prepare != nil {
			if err := prepare(ctx, cliInstance); err != nil {
				return report(formatter, err)
			}
		}

		arguments := &Arguments{
			Flags:     parseFlagsToMap(cmd),
			Args:      args,
			Formatter: formatter,
			cmd:       cmd,
		}

		result, err := handler.Execute(ctx, cliInstance, arguments)
		if err != nil {
			return report(formatter, err)
		}
		if result == nil {
			return nil
		}

		return formatter.Success(result)
	}
}

// SimpleCommand wraps a handler that works on the loaded board
func SimpleCommand(handler Handler) func(*cobra.Command, []string) error {
	return Command(handler, LoadBoard)
}

// report prints err in the selected output mode and attaches its exit code
func report(formatter *cli.OutputFormatter, err error) error {
	if fmtErr := formatter.ErrorWithSuggestion(cli.ErrorCode(err), err.Error(), suggestion(err)); fmtErr != nil {
		slog.Error("error formatting error message", "error", fmtErr)
	}
	return &cli.ExitError{Code: cli.ExitCode(err), Err: err}
}

func suggestion(err error) string {
	switch {
	case errors.Is(err, board.ErrColumnNotFound):
		return "List columns with: todoboard board show"
	case errors.Is(err, board.ErrCardNotFound):
		return "Cards can be given by ID or by position, see: todoboard board show"
	case errors.Is(err, cli.ErrAmbiguous):
		return "Pass the column ID instead of its name"
	case errors.Is(err, board.ErrCardDuplicated):
		return "Delete the leftover copy with: todoboard card delete"
	}
	return ""
}

// parseFlagsToMap converts cobra command flags to a map
func parseFlagsToMap(cmd *cobra.Command) map[string]any {
	flags := make(map[string]any)

	// Visit all flags that were explicitly set
	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Value.Type() {
		case "string":
			if v, err := cmd.Flags().GetString(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "int":
			if v, err := cmd.Flags().GetInt(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "bool":
			if v, err := cmd.Flags().GetBool(f.Name); err == nil {
				flags[f.Name] = v
			}
		case "duration":
			if v, err := cmd.Flags().GetDuration(f.Name); err == nil {
				flags[f.Name] = v
			}
		default:
			slog.Debug("unsupported flag type", "flag", f.Name, "type", f.Value.Type())
		}
	})

	return flags
}

// Has reports whether a flag was set explicitly
func (a *Arguments) Has(name string) bool {
	_, ok := a.Flags[name]
	return ok
}

// GetString retrieves a string flag with default
func (a *Arguments) GetString(name string, defaultVal string) string {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(string)
	if !ok {
		return defaultVal
	}
	return val
}

// GetInt retrieves an int flag with default
func (a *Arguments) GetInt(name string, defaultVal int) int {
	v, ok := a.Flags[name]
	if !ok {
		return defaultVal
	}
	val, ok := v.(int)
	if !ok {
		return defaultVal
	}
	return val
}

// GetBool retrieves a bool flag
func (a *Arguments) GetBool(name string) bool {
	v, ok := a.Flags[name]
	if !ok {
		return false
	}
	val, ok := v.(bool)
	if !ok {
		return false
	}
	return val
}

// Confirm asks before a destructive command. --force, --quiet and --json
// skip the question.
func (a *Arguments) Confirm(title, description string) (bool, error) {
	if a.GetBool("force") || a.Formatter.Quiet || a.Formatter.JSON {
		return true, nil
	}
	return cli.Confirm(title, description)
}

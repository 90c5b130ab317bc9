package cli

import (
	"errors"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/config"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, network errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage or configuration.
	// Use for: Missing required flags, invalid flag combinations,
	// an unusable config file.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Column not found, card not found, or any case where an ID,
	// name or position doesn't resolve.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: A card that exists but has no text, corrupted data.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Blank names or text, ambiguous column names, bad positions.
	ExitValidation = 5
)

// ErrValidation marks input rejected before anything was written
var ErrValidation = errors.New("invalid input")

// ErrAmbiguous marks a reference matching more than one column
var ErrAmbiguous = errors.New("ambiguous reference")

// ExitError carries the process exit code for an error
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// notFounder is implemented by remote API errors
type notFounder interface {
	NotFound() bool
}

// ExitCode maps an error returned by a command to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	var nf notFounder
	switch {
	case errors.Is(err, board.ErrColumnNotFound), errors.Is(err, board.ErrCardNotFound):
		return ExitNotFound
	case errors.As(err, &nf) && nf.NotFound():
		return ExitNotFound
	case errors.Is(err, board.ErrInvalidCard):
		return ExitDataErr
	case errors.Is(err, ErrValidation), errors.Is(err, ErrAmbiguous):
		return ExitValidation
	case errors.Is(err, config.ErrUnknownBackend), errors.Is(err, config.ErrMissingAPIURL):
		return ExitUsage
	default:
		return ExitError
	}
}

// ErrorCode is the machine-readable code reported in JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		if errors.Is(err, board.ErrCardNotFound) {
			return "CARD_NOT_FOUND"
		}
		if errors.Is(err, board.ErrColumnNotFound) {
			return "COLUMN_NOT_FOUND"
		}
		return "NOT_FOUND"
	case ExitDataErr:
		return "INVALID_DATA"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitUsage:
		return "USAGE_ERROR"
	}
	if errors.Is(err, board.ErrCardDuplicated) {
		return "CARD_DUPLICATED"
	}
	return "ERROR"
}

package board

import "errors"

// Inconsistent-state errors: the intent references something that is not in
// the current view. These are logged and returned but never alerted.
var (
	ErrColumnNotFound = errors.New("column not found")
	ErrCardNotFound   = errors.New("card not found")
	ErrInvalidCard    = errors.New("card has no text")
)

// ErrCardDuplicated is returned when a cross-column move created the card in
// the destination but could not delete it from the source. The card then
// exists in both columns; no rollback is attempted.
var ErrCardDuplicated = errors.New("card was copied but the original could not be removed")

package state

import (
	"strings"

	"github.com/thenoetrevino/todoboard/internal/types"
)

// InputState tracks what a text input dialog is editing.
// The typed text itself lives in the textinput model.
type InputState struct {
	// Prompt is the text displayed to the user (e.g., "New column name:")
	Prompt string

	// ColumnID is the column the input applies to (rename, add card, edit card)
	ColumnID types.ColumnID

	// CardID is the card being edited (EditCardMode)
	CardID types.CardID

	// InitialValue stores the original value for change detection
	InitialValue string
}

// NewInputState creates a new InputState with empty values.
func NewInputState() *InputState {
	return &InputState{}
}

// Start prepares the dialog for a new input
func (s *InputState) Start(prompt string, column types.ColumnID, card types.CardID, initial string) {
	s.Prompt = prompt
	s.ColumnID = column
	s.CardID = card
	s.InitialValue = initial
}

// Clear resets the dialog
func (s *InputState) Clear() {
	*s = InputState{}
}

// HasChanges returns true if value differs from the initial value, ignoring
// surrounding whitespace.
func (s *InputState) HasChanges(value string) bool {
	return strings.TrimSpace(value) != strings.TrimSpace(s.InitialValue)
}

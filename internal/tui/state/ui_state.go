package state

import "github.com/thenoetrevino/todoboard/internal/types"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode              Mode = iota // Default navigation mode
	AddColumnMode                       // Creating a new column
	RenameColumnMode                    // Renaming an existing column
	AddCardMode                         // Adding a card to the selected column
	EditCardMode                        // Editing the selected card's text
	DeleteCardConfirmMode               // Confirming card deletion
	DeleteColumnConfirmMode             // Confirming column deletion
	HelpMode                            // Displaying help screen
)

// IsInput reports whether the mode shows a text input dialog
func (m Mode) IsInput() bool {
	switch m {
	case AddColumnMode, RenameColumnMode, AddCardMode, EditCardMode:
		return true
	}
	return false
}

// IsConfirm reports whether the mode shows a yes/no dialog
func (m Mode) IsConfirm() bool {
	return m == DeleteCardConfirmMode || m == DeleteColumnConfirmMode
}

// DragKind is what a mouse drag is carrying
type DragKind int

const (
	DragNone DragKind = iota
	DragCard
	DragColumn
)

// DragState tracks an in-progress mouse drag
type DragState struct {
	Kind   DragKind
	Column types.ColumnID // source column
	Card   types.CardID   // only for DragCard

	// Pointer is the last known pointer position
	X, Y int
}

// Active reports whether something is being dragged
func (d DragState) Active() bool {
	return d.Kind != DragNone
}

// UIState manages the user interface state.
// This includes navigation (column/card selection), terminal dimensions,
// the current interaction mode and mouse drags.
type UIState struct {
	// selectedColumn is the index of the currently selected column
	selectedColumn int

	// selectedCard is the index of the currently selected card within the selected column
	selectedCard int

	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode

	// viewportOffset is the index of the leftmost visible column
	viewportOffset int

	drag DragState
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// SelectedColumn returns the index of the selected column
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SetSelectedColumn sets the selected column index. Negative values clamp to 0.
func (s *UIState) SetSelectedColumn(idx int) {
	s.selectedColumn = max(idx, 0)
}

// SelectedCard returns the index of the selected card within the selected column
func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

// SetSelectedCard sets the selected card index. Negative values clamp to 0.
func (s *UIState) SetSelectedCard(idx int) {
	s.selectedCard = max(idx, 0)
}

// Clamp keeps the selection inside a board with the given column count,
// where cardCount reports the number of cards in a column.
func (s *UIState) Clamp(columns int, cardCount func(col int) int) {
	if columns == 0 {
		s.selectedColumn, s.selectedCard = 0, 0
		return
	}
	s.selectedColumn = min(s.selectedColumn, columns-1)
	s.selectedCard = max(min(s.selectedCard, cardCount(s.selectedColumn)-1), 0)
}

// ViewportOffset returns the index of the leftmost visible column
func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

// EnsureSelectionVisible scrolls the viewport so the selected column is one
// of the visible ones. visible is how many columns fit on screen.
func (s *UIState) EnsureSelectionVisible(columns, visible int) {
	visible = max(visible, 1)
	if s.selectedColumn < s.viewportOffset {
		s.viewportOffset = s.selectedColumn
	}
	if s.selectedColumn >= s.viewportOffset+visible {
		s.viewportOffset = s.selectedColumn - visible + 1
	}
	s.viewportOffset = max(min(s.viewportOffset, columns-visible), 0)
}

// Width returns the terminal width
func (s *UIState) Width() int {
	return s.width
}

// Height returns the terminal height
func (s *UIState) Height() int {
	return s.height
}

// SetSize records the terminal dimensions
func (s *UIState) SetSize(width, height int) {
	s.width = width
	s.height = height
}

// Mode returns the current interaction mode
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode switches the interaction mode
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// Drag returns the current drag
func (s *UIState) Drag() DragState {
	return s.drag
}

// StartDrag begins dragging a card (card non-empty) or a column
func (s *UIState) StartDrag(column types.ColumnID, card types.CardID, x, y int) {
	kind := DragColumn
	if !card.IsZero() {
		kind = DragCard
	}
	s.drag = DragState{Kind: kind, Column: column, Card: card, X: x, Y: y}
}

// MoveDrag updates the pointer position of an active drag
func (s *UIState) MoveDrag(x, y int) {
	if s.drag.Active() {
		s.drag.X, s.drag.Y = x, y
	}
}

// EndDrag clears the drag and returns what was being dragged
func (s *UIState) EndDrag() DragState {
	d := s.drag
	s.drag = DragState{}
	return d
}

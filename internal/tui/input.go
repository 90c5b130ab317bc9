package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ============================================================================
// TEXT INPUT HANDLERS
// ============================================================================

// startInput opens a text input dialog. col is the column it applies to,
// nil for a new column.
func (m *Model) startInput(mode state.Mode, prompt string, col *models.Column, initial string) tea.Cmd {
	var columnID types.ColumnID
	if col != nil {
		columnID = col.ID
	}
	m.InputState.Start(prompt, columnID, "", initial)

	m.input.Reset()
	m.input.SetValue(initial)
	m.input.CursorEnd()
	m.UiState.SetMode(mode)
	return m.input.Focus()
}

// handleInputMode handles keys while a text input dialog is open.
// Enter submits, Esc cancels, everything else edits the text.
func (m *Model) handleInputMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		return m.submitInput()
	case "esc":
		m.closeInput()
		return nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submitInput sends the typed text to the reconciler and closes the dialog.
// The dialog closes whatever the outcome; blank text is dropped by the
// reconciler without a write.
func (m *Model) submitInput() tea.Cmd {
	value := m.input.Value()
	mode := m.UiState.Mode()
	in := *m.InputState
	m.closeInput()

	switch mode {
	case state.AddColumnMode:
		return m.write("create column", func(ctx context.Context) error {
			_, err := m.Board.CreateColumn(ctx, value)
			return err
		})

	case state.RenameColumnMode:
		if !in.HasChanges(value) {
			return nil
		}
		return m.write("rename column", func(ctx context.Context) error {
			return m.Board.RenameColumn(ctx, in.ColumnID, value)
		})

	case state.AddCardMode:
		return m.write("add card", func(ctx context.Context) error {
			_, err := m.Board.AddCard(ctx, in.ColumnID, value)
			return err
		})

	case state.EditCardMode:
		if !in.HasChanges(value) {
			return nil
		}
		return m.write("update card", func(ctx context.Context) error {
			return m.Board.UpdateCard(ctx, in.ColumnID, in.CardID, value)
		})
	}
	return nil
}

func (m *Model) closeInput() {
	m.input.Blur()
	m.input.Reset()
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)
}

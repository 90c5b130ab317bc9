package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// ============================================================================
// CONFIRMATION HANDLERS
// ============================================================================

// handleConfirmMode handles y/n for the delete confirmations
func (m *Model) handleConfirmMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		return m.confirmDelete()
	case "n", "N", "esc":
		m.InputState.Clear()
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// confirmDelete performs the confirmed deletion
func (m *Model) confirmDelete() tea.Cmd {
	in := *m.InputState
	mode := m.UiState.Mode()
	m.InputState.Clear()
	m.UiState.SetMode(state.NormalMode)

	if mode == state.DeleteColumnConfirmMode {
		return m.write("delete column", func(ctx context.Context) error {
			return m.Board.DeleteColumn(ctx, in.ColumnID)
		})
	}
	return m.write("delete card", func(ctx context.Context) error {
		return m.Board.DeleteCard(ctx, in.ColumnID, in.CardID)
	})
}

// ============================================================================
// HELP MODE HANDLERS
// ============================================================================

// handleHelpMode handles input in the help screen.
func (m *Model) handleHelpMode(msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

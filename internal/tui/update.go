package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/tui/layers"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

const (
	dialogMinWidth = 40
	dialogMaxWidth = 60
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		m.input.SetWidth(layers.DialogWidth(msg.Width, dialogMinWidth, dialogMaxWidth) - 6)
		m.UiState.EnsureSelectionVisible(len(m.Columns), m.visibleColumns())
		return m, nil

	case BoardChangedMsg:
		m.setColumns(msg.Columns)
		return m, m.listenForChanges()

	case AlertMsg:
		m.AlertState.Push(msg.Message)
		m.UiState.EndDrag()
		return m, m.listenForAlerts()

	case writeDoneMsg:
		return m, m.handleWriteDone(msg)

	case tea.KeyPressMsg:
		return m, m.handleKey(msg)

	case tea.MouseClickMsg:
		return m, m.handleMouseClick(msg.Mouse())

	case tea.MouseMotionMsg:
		return m, m.handleMouseMotion(msg.Mouse())

	case tea.MouseReleaseMsg:
		return m, m.handleMouseRelease(msg.Mouse())
	}

	// cursor blink and other textinput messages
	if m.UiState.Mode().IsInput() {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey dispatches a key press to the handler for the current mode.
// A pending alert blocks everything until it is dismissed.
func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}

	if m.AlertState.Active() {
		switch msg.String() {
		case "enter", "esc", "space":
			m.AlertState.Dismiss()
		}
		return nil
	}

	mode := m.UiState.Mode()
	switch {
	case mode == state.NormalMode:
		return m.handleNormalMode(msg)
	case mode.IsInput():
		return m.handleInputMode(msg)
	case mode.IsConfirm():
		return m.handleConfirmMode(msg)
	case mode == state.HelpMode:
		return m.handleHelpMode(msg)
	}
	return nil
}

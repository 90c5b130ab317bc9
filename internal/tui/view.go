package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/tui/layers"
	"github.com/thenoetrevino/todoboard/internal/tui/notifications"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// View renders the current state of the application
// This implements the "View" part of the Model-View-Update pattern
func (m *Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.MouseMode = tea.MouseModeCellMotion

	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	layerStack := []*lipgloss.Layer{lipgloss.NewLayer(m.viewBoard())}

	var modal string
	switch mode := m.UiState.Mode(); {
	case mode.IsInput():
		modal = m.viewInputDialog()
	case mode.IsConfirm():
		modal = m.viewConfirmDialog()
	case mode == state.HelpMode:
		modal = m.viewHelp()
	}
	if layer := layers.CreateCenteredLayer(modal, m.UiState.Width(), m.UiState.Height()); layer != nil {
		layerStack = append(layerStack, layer)
	}

	if message, ok := m.AlertState.Current(); ok {
		alert := notifications.RenderAlert(message, m.AlertState.Count()-1, m.UiState.Width()/2)
		layerStack = append(layerStack, layers.CreateCenteredLayer(alert, m.UiState.Width(), m.UiState.Height()))
	}

	view.Content = lipgloss.NewCanvas(layerStack...).Render()
	return view
}

// viewBoard renders the title bar, the visible columns and the status bar
func (m *Model) viewBoard() string {
	title := components.TitleStyle.Render("todoboard")
	if n, ok := m.NotificationState.Latest(); ok {
		title += "  " + notifications.RenderInline(n)
	}

	var body string
	if len(m.Columns) == 0 {
		body = components.SubtleStyle.Render(
			fmt.Sprintf("No columns. Press %s to create one.", m.Config.KeyMappings.CreateColumn))
	} else {
		body = m.viewColumns()
	}

	footer := components.RenderStatusBar(components.StatusBarProps{
		Width:    m.UiState.Width(),
		Backend:  m.Config.Backend,
		Live:     m.Board.Subscribed(),
		Dragging: m.UiState.Drag().Active(),
	})

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", body)

	// Constrain content to fit terminal height, leaving room for footer
	lines := strings.Split(content, "\n")
	maxLines := max(m.UiState.Height()-statusBarHeight, 1)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for len(lines) < maxLines {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n" + footer
}

// viewColumns renders the columns in the viewport
func (m *Model) viewColumns() string {
	drag := m.UiState.Drag()
	var dropTarget columnBox
	hasTarget := false
	if drag.Active() {
		dropTarget, hasTarget = columnAt(m.layout(), drag.X)
	}

	offset := m.UiState.ViewportOffset()
	end := min(offset+m.visibleColumns(), len(m.Columns))

	rendered := make([]string, 0, end-offset)
	for i := offset; i < end; i++ {
		col := m.Columns[i]
		selected := i == m.UiState.SelectedColumn()
		selectedCard := -1
		if selected {
			selectedCard = m.UiState.SelectedCard()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Column:       col,
			Selected:     selected,
			SelectedCard: selectedCard,
			DropTarget:   hasTarget && dropTarget.Index == i,
			Dragging:     drag.Card,
			Height:       m.columnHeight(),
		}))
	}
	return components.RenderBoard(rendered)
}

// viewInputDialog renders the text input dialog for the current mode
func (m *Model) viewInputDialog() string {
	style := components.CreateInputBoxStyle
	if mode := m.UiState.Mode(); mode == state.RenameColumnMode || mode == state.EditCardMode {
		style = components.EditInputBoxStyle
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(m.InputState.Prompt),
		"",
		m.input.View(),
		"",
		components.SubtleStyle.Render("Enter: save  Esc: cancel"),
	)
	return style.
		Width(layers.DialogWidth(m.UiState.Width(), dialogMinWidth, dialogMaxWidth)).
		Render(content)
}

// viewConfirmDialog renders the delete confirmation for the current mode
func (m *Model) viewConfirmDialog() string {
	var content string
	if m.UiState.Mode() == state.DeleteColumnConfirmMode {
		content = fmt.Sprintf("Delete column '%s'?", m.InputState.InitialValue)
		if col, ok := m.Board.Column(m.InputState.ColumnID); ok && col.CardCount() > 0 {
			content += fmt.Sprintf("\nThis will also delete %d card(s).", col.CardCount())
		}
	} else {
		content = "Delete card?\n\n" + components.WrapText(m.InputState.InitialValue, dialogMinWidth)
	}

	return components.DeleteConfirmBoxStyle.
		Width(layers.DialogWidth(m.UiState.Width(), dialogMinWidth, dialogMaxWidth)).
		Render(content + "\n\n[y]es  [n]o")
}

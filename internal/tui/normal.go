package tui

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// handleNormalMode dispatches key events in NormalMode to specific handlers.
func (m *Model) handleNormalMode(msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	km := m.Config.KeyMappings
	switch msg.String() {
	case km.Quit:
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.Refresh:
		return m.write("refresh", m.Board.Refresh)

	case km.PrevColumn, "left":
		return m.navigateColumn(-1)
	case km.NextColumn, "right":
		return m.navigateColumn(1)
	case km.PrevCard, "up":
		return m.navigateCard(-1)
	case km.NextCard, "down":
		return m.navigateCard(1)

	case km.AddCard:
		return m.handleAddCard()
	case km.EditCard:
		return m.handleEditCard()
	case km.DeleteCard:
		return m.handleDeleteCard()
	case km.MoveCardUp:
		return m.handleReorderCard(-1)
	case km.MoveCardDown:
		return m.handleReorderCard(1)
	case km.MoveCardLeft:
		return m.handleMoveCard(-1)
	case km.MoveCardRight:
		return m.handleMoveCard(1)

	case km.CreateColumn:
		return m.startInput(state.AddColumnMode, "New column name:", nil, "")
	case km.RenameColumn:
		return m.handleRenameColumn()
	case km.DeleteColumn:
		return m.handleDeleteColumn()
	case km.ToggleColumn:
		return m.handleToggleColumn()
	case km.MoveColumnLeft:
		return m.handleMoveColumn(-1)
	case km.MoveColumnRight:
		return m.handleMoveColumn(1)
	}
	return nil
}

// navigateColumn moves the selection delta columns, keeping the card index
// inside the new column.
func (m *Model) navigateColumn(delta int) tea.Cmd {
	target := m.UiState.SelectedColumn() + delta
	if target < 0 || target >= len(m.Columns) {
		return nil
	}
	m.selectColumn(target)
	return nil
}

// navigateCard moves the selection delta cards within the column
func (m *Model) navigateCard(delta int) tea.Cmd {
	col := m.currentColumn()
	if col == nil || col.Collapsed {
		return nil
	}
	target := m.UiState.SelectedCard() + delta
	if target < 0 || target >= col.CardCount() {
		return nil
	}
	m.UiState.SetSelectedCard(target)
	return nil
}

// selectColumn selects a column by index and scrolls it into view
func (m *Model) selectColumn(idx int) {
	m.UiState.SetSelectedColumn(idx)
	m.UiState.SetSelectedCard(min(m.UiState.SelectedCard(), max(m.Columns[idx].CardCount()-1, 0)))
	m.UiState.EnsureSelectionVisible(len(m.Columns), m.visibleColumns())
}

func (m *Model) handleAddCard() tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	if col.Collapsed {
		m.NotificationState.Add(state.LevelInfo, "Expand the column to add cards")
		return nil
	}
	return m.startInput(state.AddCardMode, fmt.Sprintf("New card in '%s':", col.Name), col, "")
}

func (m *Model) handleEditCard() tea.Cmd {
	col, card := m.currentColumn(), m.currentCard()
	if card == nil {
		return nil
	}
	cmd := m.startInput(state.EditCardMode, "Edit card:", col, card.Text)
	m.InputState.CardID = card.ID
	return cmd
}

func (m *Model) handleDeleteCard() tea.Cmd {
	col, card := m.currentColumn(), m.currentCard()
	if card == nil {
		return nil
	}
	m.InputState.Start("", col.ID, card.ID, card.Text)
	m.UiState.SetMode(state.DeleteCardConfirmMode)
	return nil
}

// handleReorderCard moves the selected card one slot up or down its column
func (m *Model) handleReorderCard(delta int) tea.Cmd {
	col, card := m.currentColumn(), m.currentCard()
	if card == nil {
		return nil
	}
	target := m.UiState.SelectedCard() + delta
	if target < 0 || target >= col.CardCount() {
		return nil
	}

	m.UiState.SetSelectedCard(target)
	req := board.MoveCardRequest{From: col.ID, To: col.ID, CardID: card.ID, TargetIndex: &target}
	return m.write("reorder card", func(ctx context.Context) error {
		_, err := m.Board.MoveCard(ctx, req)
		return err
	})
}

// handleMoveCard moves the selected card to the bottom of the neighbouring
// column and follows it there
func (m *Model) handleMoveCard(delta int) tea.Cmd {
	col, card := m.currentColumn(), m.currentCard()
	if card == nil {
		return nil
	}
	targetIdx := m.UiState.SelectedColumn() + delta
	if targetIdx < 0 || targetIdx >= len(m.Columns) {
		return nil
	}
	target := m.Columns[targetIdx]

	m.UiState.SetSelectedColumn(targetIdx)
	m.UiState.SetSelectedCard(target.CardCount())
	m.UiState.EnsureSelectionVisible(len(m.Columns), m.visibleColumns())

	req := board.MoveCardRequest{From: col.ID, To: target.ID, CardID: card.ID}
	return m.write("move card", func(ctx context.Context) error {
		_, err := m.Board.MoveCard(ctx, req)
		return err
	})
}

func (m *Model) handleRenameColumn() tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	return m.startInput(state.RenameColumnMode, "Rename column:", col, col.Name)
}

func (m *Model) handleDeleteColumn() tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	m.InputState.Start("", col.ID, "", col.Name)
	m.UiState.SetMode(state.DeleteColumnConfirmMode)
	return nil
}

func (m *Model) handleToggleColumn() tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	id := col.ID
	return m.write("toggle column", func(ctx context.Context) error {
		return m.Board.ToggleColumn(ctx, id)
	})
}

// handleMoveColumn swaps the selected column with its neighbour
func (m *Model) handleMoveColumn(delta int) tea.Cmd {
	col := m.currentColumn()
	if col == nil {
		return nil
	}
	targetIdx := m.UiState.SelectedColumn() + delta
	if targetIdx < 0 || targetIdx >= len(m.Columns) {
		return nil
	}
	dragged, target := col.ID, m.Columns[targetIdx].ID

	m.UiState.SetSelectedColumn(targetIdx)
	m.UiState.EnsureSelectionVisible(len(m.Columns), m.visibleColumns())
	return m.write("reorder columns", func(ctx context.Context) error {
		return m.Board.ReorderColumns(ctx, dragged, target)
	})
}

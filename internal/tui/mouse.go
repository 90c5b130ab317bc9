package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// ============================================================================
// MOUSE HANDLERS
// ============================================================================

// handleMouseClick selects what was clicked and starts a drag: a card when
// pressed on a card, the column when pressed on its header.
func (m *Model) handleMouseClick(mouse tea.Mouse) tea.Cmd {
	if mouse.Button != tea.MouseLeft || m.AlertState.Active() || m.UiState.Mode() != state.NormalMode {
		return nil
	}

	box, ok := columnAt(m.layout(), mouse.X)
	if !ok {
		return nil
	}
	m.UiState.SetSelectedColumn(box.Index)

	if box.inHeader(mouse.Y) {
		m.UiState.StartDrag(box.ID, "", mouse.X, mouse.Y)
		return nil
	}

	if idx := box.cardAt(mouse.Y); idx >= 0 {
		m.UiState.SetSelectedCard(idx)
		m.UiState.StartDrag(box.ID, box.Cards[idx].ID, mouse.X, mouse.Y)
	}
	return nil
}

// handleMouseMotion tracks the pointer while dragging
func (m *Model) handleMouseMotion(mouse tea.Mouse) tea.Cmd {
	m.UiState.MoveDrag(mouse.X, mouse.Y)
	return nil
}

// handleMouseRelease drops whatever is being dragged on the column under the
// pointer. Dropping outside every column cancels the drag.
func (m *Model) handleMouseRelease(mouse tea.Mouse) tea.Cmd {
	drag := m.UiState.EndDrag()
	if !drag.Active() {
		return nil
	}

	target, ok := columnAt(m.layout(), mouse.X)
	if !ok {
		return nil
	}

	switch drag.Kind {
	case state.DragColumn:
		return m.dropColumn(drag, target)
	case state.DragCard:
		return m.dropCard(drag, target, mouse.Y)
	}
	return nil
}

func (m *Model) dropColumn(drag state.DragState, target columnBox) tea.Cmd {
	if target.ID == drag.Column {
		return nil
	}
	m.UiState.SetSelectedColumn(target.Index)
	return m.write("reorder columns", func(ctx context.Context) error {
		return m.Board.ReorderColumns(ctx, drag.Column, target.ID)
	})
}

// dropCard reorders within the source column or moves the card to the
// bottom of another column
func (m *Model) dropCard(drag state.DragState, target columnBox, y int) tea.Cmd {
	index := board.DropIndex(float64(y), target.spans(drag.Card))

	if target.ID == drag.Column {
		current := -1
		for i, card := range target.Cards {
			if card.ID == drag.Card {
				current = i
			}
		}
		if current == index {
			return nil
		}
		m.UiState.SetSelectedCard(index)
	} else {
		m.UiState.SetSelectedColumn(target.Index)
		m.UiState.SetSelectedCard(m.Columns[target.Index].CardCount())
	}

	req := board.MoveCardRequest{From: drag.Column, To: target.ID, CardID: drag.Card, TargetIndex: &index}
	return m.write("move card", func(ctx context.Context) error {
		_, err := m.Board.MoveCard(ctx, req)
		return err
	})
}

package tui

import (
	"context"
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// write sends an intent to the reconciler off the update loop. The view is
// updated through the bridge once the binding reports the change.
func (m *Model) write(op string, fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.Ctx
	return func() tea.Msg {
		return writeDoneMsg{op: op, err: fn(ctx)}
	}
}

// handleWriteDone reacts to a finished intent. Persistence failures were
// already alerted by the reconciler; intents that no longer match the board
// get an inline notice.
func (m *Model) handleWriteDone(msg writeDoneMsg) tea.Cmd {
	if msg.err == nil {
		return nil
	}

	switch {
	case errors.Is(msg.err, board.ErrColumnNotFound),
		errors.Is(msg.err, board.ErrCardNotFound),
		errors.Is(msg.err, board.ErrInvalidCard):
		m.NotificationState.Add(state.LevelWarning, "The board changed, try again")
	default:
		m.logger.Debug("write failed", "op", msg.op, "error", msg.err)
	}
	return nil
}

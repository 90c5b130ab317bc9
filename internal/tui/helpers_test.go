package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/logging"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store/storetest"
)

// newTestModel builds a model over an in-memory board wired the way the
// launcher wires it, sized to 120x40
func newTestModel(t *testing.T, records ...models.ColumnRecord) (*Model, *storetest.Memory) {
	t.Helper()

	mem := storetest.NewMemory()
	mem.Seed(records...)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	bridge := NewBridge()
	r := board.New(mem, board.WithAlerter(bridge), board.WithLogger(logging.Discard()))
	r.OnChange(bridge.BoardChanged)
	require.NoError(t, r.Refresh(ctx))

	m := New(ctx, r, config.Default(), bridge, WithLogger(logging.Discard()))
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	drain(m)
	mem.ResetWrites()
	return m, mem
}

// twoColumns is "doing" with cards A-D and an empty "done today"
func twoColumns() []models.ColumnRecord {
	return []models.ColumnRecord{
		storetest.Col("c1", "doing", 0,
			storetest.Card("k1", "A", 0),
			storetest.Card("k2", "B", 1),
			storetest.Card("k3", "C", 2),
			storetest.Card("k4", "D", 3),
		),
		storetest.Col("c2", "done today", 1),
	}
}

// key builds a key press the way the terminal reports it
func key(s string) tea.KeyPressMsg {
	switch s {
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEsc})
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "up":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyUp})
	case "down":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyDown})
	case "left":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyLeft})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	}
	return tea.KeyPressMsg(tea.Key{Code: []rune(s)[0], Text: s})
}

// press sends keys in order and returns the command of the last one
func press(m *Model, keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		_, cmd = m.Update(key(k))
	}
	return cmd
}

// typeText types s into the open input dialog
func typeText(m *Model, s string) {
	for _, r := range s {
		m.Update(key(string(r)))
	}
}

// run executes a write command, feeds its result back and delivers every
// board change and alert it caused
func run(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	m.Update(cmd())
	drain(m)
}

// drain delivers pending bridge messages without blocking
func drain(m *Model) {
	for {
		select {
		case columns := <-m.bridge.changes:
			m.setColumns(columns)
		case message := <-m.bridge.alerts:
			m.AlertState.Push(message)
		default:
			return
		}
	}
}

func cardTexts(col *models.Column) []string {
	out := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		out[i] = c.Text
	}
	return out
}

func columnNames(columns []*models.Column) []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}

// Package tui implements the interactive board: columns side by side,
// keyboard and mouse intents, and dialogs for text input, confirmation and
// failure alerts.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

// inputCharLimit caps column names and card text typed in the TUI
const inputCharLimit = 500

// Model represents the application state for the TUI
type Model struct {
	Ctx    context.Context
	Board  *board.Reconciler
	Config *config.Config

	// Columns is the last view received from the reconciler
	Columns []*models.Column

	UiState           *state.UIState
	InputState        *state.InputState
	NotificationState *state.NotificationState
	AlertState        *state.AlertState

	input  textinput.Model
	bridge *Bridge
	logger *slog.Logger
}

// Option configures a Model
type Option func(*Model)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(m *Model) {
		m.logger = logger
	}
}

// New creates the board model. bridge must be registered with the
// reconciler (as its alerter and a change listener) by the caller.
func New(ctx context.Context, b *board.Reconciler, cfg *config.Config, bridge *Bridge, opts ...Option) *Model {
	components.InitStyles(cfg.ColorScheme)

	ti := textinput.New()
	ti.CharLimit = inputCharLimit

	m := &Model{
		Ctx:               ctx,
		Board:             b,
		Config:            cfg,
		UiState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		NotificationState: state.NewNotificationState(),
		AlertState:        state.NewAlertState(),
		input:             ti,
		bridge:            bridge,
		logger:            slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.setColumns(b.View())
	return m
}

// Init starts listening for board changes and alerts
// Required by tea.Model interface
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.listenForChanges(), m.listenForAlerts())
}

// listenForChanges waits for the next rebuilt view
func (m *Model) listenForChanges() tea.Cmd {
	return func() tea.Msg {
		select {
		case columns := <-m.bridge.changes:
			return BoardChangedMsg{Columns: columns}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// listenForAlerts waits for the next failure alert
func (m *Model) listenForAlerts() tea.Cmd {
	return func() tea.Msg {
		select {
		case message := <-m.bridge.alerts:
			return AlertMsg{Message: message}
		case <-m.Ctx.Done():
			return nil
		}
	}
}

// setColumns replaces the view and keeps the selection on the board
func (m *Model) setColumns(columns []*models.Column) {
	m.Columns = columns
	m.UiState.Clamp(len(columns), func(col int) int {
		return columns[col].CardCount()
	})
	m.UiState.EnsureSelectionVisible(len(columns), m.visibleColumns())
}

// currentColumn returns the selected column, or nil on an empty board
func (m *Model) currentColumn() *models.Column {
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= len(m.Columns) {
		return nil
	}
	return m.Columns[idx]
}

// currentCard returns the selected card, or nil when the selected column is
// empty or collapsed
func (m *Model) currentCard() *models.Card {
	col := m.currentColumn()
	if col == nil || col.Collapsed {
		return nil
	}
	idx := m.UiState.SelectedCard()
	if idx < 0 || idx >= col.CardCount() {
		return nil
	}
	return col.Cards[idx]
}

// columnIndex returns the position of the column with the given ID, or -1
func (m *Model) columnIndex(col *models.Column) int {
	for i, c := range m.Columns {
		if c.ID == col.ID {
			return i
		}
	}
	return -1
}

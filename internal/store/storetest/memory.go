// Package storetest provides an in-memory store.Store for tests, with a
// write log and failure injection.
package storetest

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ErrInjected is returned by operations configured to fail
var ErrInjected = errors.New("injected failure")

// Op names used in the write log and for failure injection
const (
	OpList         = "ListColumns"
	OpCreateColumn = "CreateColumn"
	OpUpdateColumn = "UpdateColumn"
	OpDeleteColumn = "DeleteColumn"
	OpCreateCard   = "CreateCard"
	OpUpdateCard   = "UpdateCard"
	OpDeleteCard   = "DeleteCard"
)

// Write is one recorded mutation
type Write struct {
	Op         string
	ColumnID   types.ColumnID
	CardID     types.CardID
	NewColumn  *models.NewColumn
	NewCard    *models.NewCard
	ColumnEdit *models.ColumnPatch
	CardEdit   *models.CardPatch
}

// Memory is a thread-safe in-memory Store
type Memory struct {
	mu      sync.Mutex
	columns map[types.ColumnID]*models.ColumnRecord
	writes  []Write
	fail    map[string]error
	nextID  int
	closed  bool
}

var _ store.Store = (*Memory)(nil)

// NewMemory creates an empty store
func NewMemory() *Memory {
	return &Memory{
		columns: make(map[types.ColumnID]*models.ColumnRecord),
		fail:    make(map[string]error),
	}
}

// Seed inserts records directly, bypassing the write log
func (m *Memory) Seed(records ...models.ColumnRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, r := range records {
		rec := cloneRecord(r)
		m.columns[rec.ID] = &rec
	}
}

// FailOn makes every future call of op return err (ErrInjected when nil)
func (m *Memory) FailOn(op string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err == nil {
		err = ErrInjected
	}
	m.fail[op] = err
}

// ClearFailures removes all injected failures
func (m *Memory) ClearFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fail = make(map[string]error)
}

// Writes returns a copy of the write log
func (m *Memory) Writes() []Write {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Write, len(m.writes))
	copy(out, m.writes)
	return out
}

// ResetWrites clears the write log
func (m *Memory) ResetWrites() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.writes = nil
}

// Column returns a copy of the stored column record
func (m *Memory) Column(id types.ColumnID) (models.ColumnRecord, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rec, ok := m.columns[id]
	if !ok {
		return models.ColumnRecord{}, false
	}
	return cloneRecord(*rec), true
}

// ListColumns implements store.ColumnReader
func (m *Memory) ListColumns(ctx context.Context) ([]models.ColumnRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpList); err != nil {
		return nil, err
	}
	out := make([]models.ColumnRecord, 0, len(m.columns))
	for _, rec := range m.columns {
		out = append(out, cloneRecord(*rec))
	}
	return out, nil
}

// CreateColumn implements store.ColumnWriter
func (m *Memory) CreateColumn(ctx context.Context, col models.NewColumn) (types.ColumnID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpCreateColumn); err != nil {
		return "", err
	}
	id := types.ColumnID(m.newID("col"))
	order := col.Order
	m.columns[id] = &models.ColumnRecord{
		ID:        id,
		Name:      col.Name,
		Collapsed: col.Collapsed,
		Order:     &order,
		Cards:     make(map[types.CardID]models.CardRecord),
	}
	m.writes = append(m.writes, Write{Op: OpCreateColumn, ColumnID: id, NewColumn: &col})
	return id, nil
}

// UpdateColumn implements store.ColumnWriter
func (m *Memory) UpdateColumn(ctx context.Context, id types.ColumnID, patch models.ColumnPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpUpdateColumn); err != nil {
		return err
	}
	rec, ok := m.columns[id]
	if !ok {
		return fmt.Errorf("column %s not found", id)
	}
	if patch.Name != nil {
		rec.Name = *patch.Name
	}
	if patch.Collapsed != nil {
		rec.Collapsed = *patch.Collapsed
	}
	if patch.Order != nil {
		rec.Order = models.IntPtr(*patch.Order)
	}
	m.writes = append(m.writes, Write{Op: OpUpdateColumn, ColumnID: id, ColumnEdit: &patch})
	return nil
}

// DeleteColumn implements store.ColumnWriter
func (m *Memory) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpDeleteColumn); err != nil {
		return err
	}
	delete(m.columns, id)
	m.writes = append(m.writes, Write{Op: OpDeleteColumn, ColumnID: id})
	return nil
}

// CreateCard implements store.CardWriter
func (m *Memory) CreateCard(ctx context.Context, columnID types.ColumnID, card models.NewCard) (types.CardID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpCreateCard); err != nil {
		return "", err
	}
	rec, ok := m.columns[columnID]
	if !ok {
		return "", fmt.Errorf("column %s not found", columnID)
	}
	id := types.CardID(m.newID("card"))
	rec.Cards[id] = models.CardRecord{Text: card.Text, Order: models.IntPtr(card.Order)}
	m.writes = append(m.writes, Write{Op: OpCreateCard, ColumnID: columnID, CardID: id, NewCard: &card})
	return id, nil
}

// UpdateCard implements store.CardWriter
func (m *Memory) UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, patch models.CardPatch) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpUpdateCard); err != nil {
		return err
	}
	rec, ok := m.columns[columnID]
	if !ok {
		return fmt.Errorf("column %s not found", columnID)
	}
	card, ok := rec.Cards[cardID]
	if !ok {
		return fmt.Errorf("card %s not found", cardID)
	}
	if patch.Text != nil {
		card.Text = *patch.Text
	}
	if patch.Order != nil {
		card.Order = models.IntPtr(*patch.Order)
	}
	rec.Cards[cardID] = card
	m.writes = append(m.writes, Write{Op: OpUpdateCard, ColumnID: columnID, CardID: cardID, CardEdit: &patch})
	return nil
}

// DeleteCard implements store.CardWriter
func (m *Memory) DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := m.failure(OpDeleteCard); err != nil {
		return err
	}
	if rec, ok := m.columns[columnID]; ok {
		delete(rec.Cards, cardID)
	}
	m.writes = append(m.writes, Write{Op: OpDeleteCard, ColumnID: columnID, CardID: cardID})
	return nil
}

// Close implements store.Store
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Closed reports whether Close was called
func (m *Memory) Closed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

func (m *Memory) failure(op string) error {
	if err, ok := m.fail[op]; ok {
		return err
	}
	return nil
}

func (m *Memory) newID(prefix string) string {
	m.nextID++
	return fmt.Sprintf("%s-%d", prefix, m.nextID)
}

func cloneRecord(r models.ColumnRecord) models.ColumnRecord {
	out := r
	if r.Order != nil {
		out.Order = models.IntPtr(*r.Order)
	}
	out.Cards = make(map[types.CardID]models.CardRecord, len(r.Cards))
	for id, c := range r.Cards {
		card := c
		if c.Order != nil {
			card.Order = models.IntPtr(*c.Order)
		}
		out.Cards[id] = card
	}
	return out
}

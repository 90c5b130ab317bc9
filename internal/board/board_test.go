package board

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store/storetest"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// recordingAlerter collects alert messages
type recordingAlerter struct {
	mu       sync.Mutex
	messages []string
}

func (a *recordingAlerter) Alert(message string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.messages = append(a.messages, message)
}

func (a *recordingAlerter) Messages() []string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]string(nil), a.messages...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// setupReconciler loads a reconciler over a memory store seeded with records
// and clears the write log so tests only see their own writes.
func setupReconciler(t *testing.T, records ...models.ColumnRecord) (*Reconciler, *storetest.Memory, *recordingAlerter) {
	t.Helper()
	mem := storetest.NewMemory()
	mem.Seed(records...)
	alerts := &recordingAlerter{}
	r := New(mem, WithAlerter(alerts), WithLogger(discardLogger()))
	if len(records) > 0 {
		require.NoError(t, r.Refresh(context.Background()))
	}
	mem.ResetWrites()
	return r, mem, alerts
}

type cardView struct {
	ID    types.CardID
	Text  string
	Order int
}

// cardsOf flattens one column of the view for comparison
func cardsOf(t *testing.T, r *Reconciler, id types.ColumnID) []cardView {
	t.Helper()
	col, ok := r.Column(id)
	require.True(t, ok, "column %s not in view", id)
	out := make([]cardView, 0, len(col.Cards))
	for _, c := range col.Cards {
		out = append(out, cardView{ID: c.ID, Text: c.Text, Order: c.Order})
	}
	return out
}

func columnNames(r *Reconciler) []string {
	var names []string
	for _, col := range r.View() {
		names = append(names, col.Name)
	}
	return names
}

func opsOf(writes []storetest.Write) []string {
	ops := make([]string, len(writes))
	for i, w := range writes {
		ops[i] = w.Op
	}
	return ops
}

// ============================================================================
// NORMALIZATION
// ============================================================================

func TestNormalize_SortsColumnsAndCards(t *testing.T) {
	records := []models.ColumnRecord{
		storetest.Col("z", "later", -1),
		storetest.Col("b", "second", 1,
			storetest.Card("k2", "two", 1),
			storetest.Card("k9", "unordered", -1),
			storetest.Card("k1", "one", 0),
		),
		storetest.Col("a", "first", 0),
	}

	view := Normalize(records)

	require.Len(t, view, 3)
	assert.Equal(t, []string{"first", "second", "later"}, []string{view[0].Name, view[1].Name, view[2].Name})
	assert.Equal(t, models.MissingOrder, view[2].Order)

	var texts []string
	for _, c := range view[1].Cards {
		texts = append(texts, c.Text)
	}
	assert.Equal(t, []string{"one", "two", "unordered"}, texts)
	assert.Equal(t, models.MissingOrder, view[1].Cards[2].Order)
}

func TestNormalize_TiesBrokenByID(t *testing.T) {
	records := []models.ColumnRecord{
		storetest.Col("c2", "beta", 0),
		storetest.Col("c1", "alpha", 0),
	}

	view := Normalize(records)
	assert.Equal(t, types.ColumnID("c1"), view[0].ID)
	assert.Equal(t, types.ColumnID("c2"), view[1].ID)
}

func TestNormalize_Idempotent(t *testing.T) {
	records := []models.ColumnRecord{
		storetest.Col("x", "todo", 2, storetest.Card("a", "A", 3), storetest.Card("b", "B", -1)),
		storetest.Col("y", "done", -1, storetest.Card("c", "C", 0)),
		storetest.Col("w", "doing", 0),
	}

	first := Normalize(records)
	second := Normalize(records)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Normalize not idempotent (-first +second):\n%s", diff)
	}
}

func TestApply_ViewIsACopy(t *testing.T) {
	r, _, _ := setupReconciler(t, storetest.Col("x", "todo", 0, storetest.Card("a", "A", 0)))

	view := r.View()
	view[0].Name = "mutated"
	view[0].Cards[0].Text = "mutated"

	assert.Equal(t, []string{"todo"}, columnNames(r))
	assert.Equal(t, "A", cardsOf(t, r, "x")[0].Text)
}

// ============================================================================
// LOAD AND SEEDING
// ============================================================================

func TestLoad_SeedsEmptyBoardOnce(t *testing.T) {
	r, mem, _ := setupReconciler(t)
	ctx := context.Background()

	require.NoError(t, r.Load(ctx))
	require.NoError(t, r.Load(ctx))

	writes := mem.Writes()
	require.Len(t, writes, 2)
	assert.Equal(t, "doing", writes[0].NewColumn.Name)
	assert.Equal(t, 0, writes[0].NewColumn.Order)
	assert.Equal(t, "done today", writes[1].NewColumn.Name)
	assert.Equal(t, 1, writes[1].NewColumn.Order)
	assert.False(t, writes[0].NewColumn.Collapsed)

	assert.Equal(t, []string{"doing", "done today"}, columnNames(r))
	assert.True(t, r.Loaded())
}

func TestLoad_ConcurrentSeedingDoesNotDuplicate(t *testing.T) {
	r, mem, _ := setupReconciler(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = r.Load(ctx)
		}()
	}
	wg.Wait()

	assert.Len(t, mem.Writes(), 2)
	assert.Equal(t, []string{"doing", "done today"}, columnNames(r))
}

func TestLoad_FailedFetchNeverSeeds(t *testing.T) {
	r, mem, alerts := setupReconciler(t)
	mem.FailOn(storetest.OpList, nil)

	err := r.Load(context.Background())

	require.ErrorIs(t, err, storetest.ErrInjected)
	assert.Empty(t, mem.Writes())
	assert.False(t, r.Loaded())
	assert.Len(t, alerts.Messages(), 1)
}

func TestLoad_NonEmptyBoardNotSeeded(t *testing.T) {
	r, mem, _ := setupReconciler(t)
	mem.Seed(storetest.Col("x", "backlog", 0))

	require.NoError(t, r.Load(context.Background()))

	assert.Empty(t, mem.Writes())
	assert.Equal(t, []string{"backlog"}, columnNames(r))
}

// ============================================================================
// LISTENERS
// ============================================================================

func TestOnChange_LastNotifiedViewIsCurrent(t *testing.T) {
	r, _, _ := setupReconciler(t)

	var mu sync.Mutex
	var last int
	r.OnChange(func(columns []*models.Column) {
		mu.Lock()
		last = len(columns)
		mu.Unlock()
	})

	var wg sync.WaitGroup
	for n := 1; n <= 20; n++ {
		records := make([]models.ColumnRecord, n)
		for i := range records {
			records[i] = storetest.Col(fmt.Sprintf("c%02d", i), "col", i)
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Apply(records)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, len(r.View()), last, "listeners end on the view the reconciler holds")
}

func TestOnChange_NotifiedOnEveryRebuild(t *testing.T) {
	r, _, _ := setupReconciler(t)

	var calls int
	var last []*models.Column
	unsubscribe := r.OnChange(func(columns []*models.Column) {
		calls++
		last = columns
	})

	r.Apply([]models.ColumnRecord{storetest.Col("x", "todo", 0)})
	r.Apply([]models.ColumnRecord{storetest.Col("x", "todo", 0), storetest.Col("y", "done", 1)})

	assert.Equal(t, 2, calls)
	assert.Len(t, last, 2)

	unsubscribe()
	r.Apply(nil)
	assert.Equal(t, 2, calls)
}

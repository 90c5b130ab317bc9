// Package board owns the in-memory board view and turns user intents into
// persistence writes. It sits between a store.Store binding and whatever
// presents the board (TUI, CLI).
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// DefaultWriteConcurrency bounds how many renumbering writes are in flight
const DefaultWriteConcurrency = 8

// Alerter shows a blocking failure message to the user
type Alerter interface {
	Alert(message string)
}

// AlerterFunc adapts a function to Alerter
type AlerterFunc func(message string)

// Alert implements Alerter
func (f AlerterFunc) Alert(message string) {
	f(message)
}

// Listener is called with a copy of the view after every rebuild
type Listener func(columns []*models.Column)

// Reconciler holds the ordered board view and issues the writes that realize
// user intents. It is safe for concurrent use: subscription snapshots may
// arrive on a different goroutine than the one issuing intents.
type Reconciler struct {
	store   store.Store
	alerter Alerter
	logger  *slog.Logger

	refreshAfterWrite atomic.Bool
	subscribed        atomic.Bool
	// seedPending is set when Load could not fetch; the first watched
	// snapshot finishes it
	seedPending atomic.Bool
	writeLimit  int

	// applyMu orders view swaps and their notifications
	applyMu sync.Mutex
	mu      sync.RWMutex
	columns []*models.Column
	loaded  bool

	listenMu   sync.Mutex
	listeners  map[int]Listener
	listenerID int

	seedMu sync.Mutex
}

// Option configures a Reconciler
type Option func(*Reconciler)

// WithAlerter sets where persistence failures are surfaced
func WithAlerter(a Alerter) Option {
	return func(r *Reconciler) {
		r.alerter = a
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		r.logger = logger
	}
}

// WithRefreshAfterWrite controls whether the view is re-fetched after each
// successful write. Bindings that push snapshots don't need it.
func WithRefreshAfterWrite(enabled bool) Option {
	return func(r *Reconciler) {
		r.refreshAfterWrite.Store(enabled)
	}
}

// WithWriteConcurrency bounds concurrent renumbering writes
func WithWriteConcurrency(n int) Option {
	return func(r *Reconciler) {
		if n > 0 {
			r.writeLimit = n
		}
	}
}

// New creates a reconciler over the given persistence binding
func New(s store.Store, opts ...Option) *Reconciler {
	r := &Reconciler{
		store:      s,
		logger:     slog.Default(),
		writeLimit: DefaultWriteConcurrency,
		listeners:  make(map[int]Listener),
	}
	r.refreshAfterWrite.Store(true)
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// View returns a copy of the ordered board
func (r *Reconciler) View() []*models.Column {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneColumns(r.columns)
}

// Loaded reports whether at least one snapshot has been applied
func (r *Reconciler) Loaded() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.loaded
}

// Column returns a copy of one column of the view
func (r *Reconciler) Column(id types.ColumnID) (*models.Column, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	col, _ := r.findColumn(id)
	if col == nil {
		return nil, false
	}
	return cloneColumn(col), true
}

// Subscribed reports whether the view is currently kept by a live
// subscription rather than polling
func (r *Reconciler) Subscribed() bool {
	return r.subscribed.Load()
}

// OnChange registers a listener for view rebuilds. The returned function
// removes it.
func (r *Reconciler) OnChange(fn Listener) func() {
	r.listenMu.Lock()
	defer r.listenMu.Unlock()
	r.listenerID++
	id := r.listenerID
	r.listeners[id] = fn
	return func() {
		r.listenMu.Lock()
		defer r.listenMu.Unlock()
		delete(r.listeners, id)
	}
}

// Apply ingests a snapshot of the whole columns tree and rebuilds the view.
// Listeners are notified in the order views are applied.
func (r *Reconciler) Apply(records []models.ColumnRecord) {
	columns := Normalize(records)

	r.applyMu.Lock()
	defer r.applyMu.Unlock()

	r.mu.Lock()
	r.columns = columns
	r.loaded = true
	r.mu.Unlock()

	r.notify(columns)
}

// Refresh fetches the columns tree from the binding and applies it
func (r *Reconciler) Refresh(ctx context.Context) error {
	records, err := r.store.ListColumns(ctx)
	if err != nil {
		return r.persistFailure("load board", err)
	}
	r.Apply(records)
	return nil
}

// Load performs the initial fetch. An empty board is seeded with the
// default columns. A failed fetch never seeds here; the first snapshot
// Watch receives afterwards seeds it if it is still empty.
func (r *Reconciler) Load(ctx context.Context) error {
	if err := r.Refresh(ctx); err != nil {
		r.seedPending.Store(true)
		return err
	}
	r.seedPending.Store(false)

	r.mu.RLock()
	empty := len(r.columns) == 0
	r.mu.RUnlock()
	if !empty {
		return nil
	}

	r.logger.Info("board is empty, creating default columns")
	return r.SeedDefaults(ctx)
}

// SeedDefaults creates the default columns when the stored board is empty.
// It re-reads the binding first, so repeated or overlapping calls never
// create duplicates.
func (r *Reconciler) SeedDefaults(ctx context.Context) error {
	r.seedMu.Lock()
	defer r.seedMu.Unlock()

	records, err := r.store.ListColumns(ctx)
	if err != nil {
		return r.persistFailure("load board", err)
	}
	if len(records) > 0 {
		r.Apply(records)
		return nil
	}

	for _, col := range models.DefaultColumns {
		if _, err := r.store.CreateColumn(ctx, col); err != nil {
			return r.persistFailure("create default columns", err, "name", col.Name)
		}
	}
	return r.Refresh(ctx)
}

// Watch keeps the view current until ctx is done. Bindings implementing
// store.Subscriber push a snapshot per upstream change; every snapshot
// rebuilds the view. Other bindings are polled at interval. When a
// subscription ends before ctx is done, the board falls back to polling and
// refreshes after every write.
func (r *Reconciler) Watch(ctx context.Context, interval time.Duration) error {
	if sub, ok := r.store.(store.Subscriber); ok {
		r.logger.Debug("watching board via subscription")
		r.subscribed.Store(true)
		err := sub.Subscribe(ctx, func(records []models.ColumnRecord) {
			r.ingest(ctx, records)
		})
		r.refreshAfterWrite.Store(true)
		r.subscribed.Store(false)
		if ctx.Err() != nil {
			return nil
		}
		if interval <= 0 {
			r.logger.Error("board subscription ended", "error", err)
			return fmt.Errorf("subscribe: %w", err)
		}
		r.logger.Warn("board subscription ended, falling back to polling", "error", err, "interval", interval)
		// writes made after the feed went quiet never reached the view
		r.poll(ctx)
	}

	if interval <= 0 {
		return fmt.Errorf("invalid poll interval %v", interval)
	}

	r.logger.Debug("watching board via polling", "interval", interval)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.poll(ctx)
		}
	}
}

// poll fetches and applies one snapshot. Failures are logged only: the next
// tick retries.
func (r *Reconciler) poll(ctx context.Context) {
	records, err := r.store.ListColumns(ctx)
	if err != nil {
		if ctx.Err() == nil {
			r.logger.Warn("board poll failed", "error", err)
		}
		return
	}
	r.ingest(ctx, records)
}

// ingest applies a watched snapshot and seeds an empty board when Load
// could not
func (r *Reconciler) ingest(ctx context.Context, records []models.ColumnRecord) {
	r.Apply(records)
	if !r.seedPending.CompareAndSwap(true, false) || len(records) > 0 {
		return
	}
	r.logger.Info("board is empty, creating default columns")
	if err := r.SeedDefaults(ctx); err != nil {
		r.seedPending.Store(true)
	}
}

// afterWrite re-fetches the view when the binding doesn't push snapshots.
// Refresh failures are already logged and alerted; the write itself
// succeeded, so they are not returned.
func (r *Reconciler) afterWrite(ctx context.Context) {
	if !r.refreshAfterWrite.Load() {
		return
	}
	_ = r.Refresh(ctx)
}

// persistFailure logs and alerts a failed persistence call
func (r *Reconciler) persistFailure(op string, err error, attrs ...any) error {
	r.logger.Error(op+" failed", append(attrs, "error", err)...)
	r.alert(fmt.Sprintf("%s failed: %v", op, err))
	return fmt.Errorf("%s: %w", op, err)
}

// inconsistent logs an intent that doesn't match the current view
func (r *Reconciler) inconsistent(op string, err error, attrs ...any) error {
	r.logger.Warn(op+" aborted", append(attrs, "error", err)...)
	return fmt.Errorf("%s: %w", op, err)
}

func (r *Reconciler) alert(message string) {
	if r.alerter != nil {
		r.alerter.Alert(message)
	}
}

func (r *Reconciler) notify(columns []*models.Column) {
	r.listenMu.Lock()
	listeners := make([]Listener, 0, len(r.listeners))
	for _, fn := range r.listeners {
		listeners = append(listeners, fn)
	}
	r.listenMu.Unlock()

	for _, fn := range listeners {
		fn(cloneColumns(columns))
	}
}

// findColumn must be called with r.mu held
func (r *Reconciler) findColumn(id types.ColumnID) (*models.Column, int) {
	for i, col := range r.columns {
		if col.ID == id {
			return col, i
		}
	}
	return nil, -1
}

// snapshotColumn returns a copy of a column, or nil
func (r *Reconciler) snapshotColumn(id types.ColumnID) *models.Column {
	col, ok := r.Column(id)
	if !ok {
		return nil
	}
	return col
}

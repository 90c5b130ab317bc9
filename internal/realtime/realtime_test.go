package realtime

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store/storetest"
	"github.com/thenoetrevino/todoboard/internal/user"
)

// fakeFeed is an in-process EventPublisher
type fakeFeed struct {
	mu      sync.Mutex
	sent    []events.Event
	failing bool
	ch      chan events.Event
	closed  bool
}

func newFakeFeed() *fakeFeed {
	return &fakeFeed{ch: make(chan events.Event, 16)}
}

func (f *fakeFeed) SendEvent(ev events.Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("daemon gone")
	}
	f.sent = append(f.sent, ev)
	return nil
}

func (f *fakeFeed) Sent() []events.Event {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]events.Event(nil), f.sent...)
}

func (f *fakeFeed) Connect(context.Context) error { return nil }
func (f *fakeFeed) Subscribe(string) error        { return nil }

func (f *fakeFeed) Listen(context.Context) (<-chan events.Event, error) {
	return f.ch, nil
}

func (f *fakeFeed) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestWrites_PublishOnSuccess(t *testing.T) {
	mem := storetest.NewMemory()
	feed := newFakeFeed()
	s := New(mem, feed, "work", WithLogger(quietLogger()))
	ctx := context.Background()

	col, err := s.CreateColumn(ctx, models.NewColumn{Name: "doing"})
	require.NoError(t, err)
	card, err := s.CreateCard(ctx, col, models.NewCard{Text: "x"})
	require.NoError(t, err)
	require.NoError(t, s.UpdateCard(ctx, col, card, models.CardPatch{Order: models.IntPtr(1)}))
	require.NoError(t, s.UpdateColumn(ctx, col, models.ColumnPatch{Collapsed: models.BoolPtr(true)}))
	require.NoError(t, s.DeleteCard(ctx, col, card))
	require.NoError(t, s.DeleteColumn(ctx, col))

	sent := feed.Sent()
	require.Len(t, sent, 6, "one notification per write")
	for _, ev := range sent {
		assert.Equal(t, events.EventBoardChanged, ev.Type)
		assert.Equal(t, "work", ev.Board)
	}
}

func TestWrites_Actor(t *testing.T) {
	t.Setenv(user.EnvUser, "alice")
	feed := newFakeFeed()
	s := New(storetest.NewMemory(), feed, "work", WithLogger(quietLogger()))
	_, err := s.CreateColumn(context.Background(), models.NewColumn{Name: "doing"})
	require.NoError(t, err)

	other := New(storetest.NewMemory(), feed, "work", WithLogger(quietLogger()), WithActor("bob"))
	_, err = other.CreateColumn(context.Background(), models.NewColumn{Name: "doing"})
	require.NoError(t, err)

	sent := feed.Sent()
	require.Len(t, sent, 2)
	assert.Equal(t, "alice", sent[0].Actor)
	assert.Equal(t, "bob", sent[1].Actor)
}

func TestWrites_FailureNotPublished(t *testing.T) {
	mem := storetest.NewMemory()
	mem.FailOn(storetest.OpCreateColumn, nil)
	feed := newFakeFeed()
	s := New(mem, feed, "work", WithLogger(quietLogger()))

	_, err := s.CreateColumn(context.Background(), models.NewColumn{Name: "doing"})

	assert.ErrorIs(t, err, storetest.ErrInjected)
	assert.Empty(t, feed.Sent())
}

func TestWrites_PublishFailureDoesNotFailWrite(t *testing.T) {
	mem := storetest.NewMemory()
	feed := newFakeFeed()
	feed.failing = true
	s := New(mem, feed, "work", WithLogger(quietLogger()))

	_, err := s.CreateColumn(context.Background(), models.NewColumn{Name: "doing"})
	assert.NoError(t, err)
}

func TestSubscribe_SnapshotPerNotification(t *testing.T) {
	mem := storetest.NewMemory()
	mem.Seed(storetest.Col("x", "doing", 0))
	feed := newFakeFeed()
	s := New(mem, feed, "work", WithLogger(quietLogger()))

	snapshots := make(chan []models.ColumnRecord, 8)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.Subscribe(ctx, func(r []models.ColumnRecord) { snapshots <- r })
	}()

	initial := <-snapshots
	assert.Len(t, initial, 1)

	mem.Seed(storetest.Col("y", "done", 1))
	feed.ch <- events.Event{Type: events.EventBoardChanged, Board: "work", SequenceID: 1}
	feed.ch <- events.Event{Type: events.EventBoardChanged, Board: "other", SequenceID: 2}
	feed.ch <- events.Event{Type: events.EventBoardChanged, Board: "", SequenceID: 3}

	assert.Len(t, <-snapshots, 2)
	assert.Len(t, <-snapshots, 2)

	cancel()
	require.NoError(t, <-done)
	assert.Empty(t, snapshots, "other boards are ignored")
}

func TestSubscribe_FeedClosed(t *testing.T) {
	feed := newFakeFeed()
	s := New(storetest.NewMemory(), feed, "work", WithLogger(quietLogger()))
	close(feed.ch)

	err := s.Subscribe(context.Background(), func([]models.ColumnRecord) {})
	assert.Error(t, err)
}

func TestConnect_NoDaemon(t *testing.T) {
	_, err := Connect(context.Background(), storetest.NewMemory(),
		filepath.Join(t.TempDir(), "none.sock"), "work")

	var daemonErr *events.DaemonError
	assert.True(t, errors.As(err, &daemonErr))
}

func TestClose_ClosesFeedAndStore(t *testing.T) {
	mem := storetest.NewMemory()
	feed := newFakeFeed()
	s := New(mem, feed, "work")

	require.NoError(t, s.Close())
	assert.True(t, mem.Closed())
	assert.True(t, feed.closed)
}

// waitFor polls cond for up to two seconds
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 2*time.Second, 10*time.Millisecond)
}

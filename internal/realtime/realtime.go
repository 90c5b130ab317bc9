// Package realtime is the push-based persistence binding. Writes go to the
// local SQLite store and are announced on the daemon's change feed; every
// announcement, from this client or any other, triggers a fresh snapshot.
package realtime

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/todoboard/internal/events"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/store"
	"github.com/thenoetrevino/todoboard/internal/types"
	"github.com/thenoetrevino/todoboard/internal/user"
)

// publishRetries bounds PublishWithRetry attempts per write
const publishRetries = 3

// Store decorates a store.Store with change notifications
type Store struct {
	store.Store
	feed   events.EventPublisher
	board  string
	actor  string
	logger *slog.Logger
}

var (
	_ store.Store      = (*Store)(nil)
	_ store.Subscriber = (*Store)(nil)
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithActor sets who published changes are attributed to
func WithActor(name string) Option {
	return func(s *Store) {
		s.actor = name
	}
}

// New wraps base. feed must already be connected.
func New(base store.Store, feed events.EventPublisher, board string, opts ...Option) *Store {
	s := &Store{
		Store:  base,
		feed:   feed,
		board:  board,
		actor:  user.Name(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Connect dials the daemon and wraps base. When the daemon is unreachable the
// returned error is an *events.DaemonError and callers can fall back to base.
func Connect(ctx context.Context, base store.Store, socketPath, board string, opts ...Option) (*Store, error) {
	client := events.NewClient(socketPath, events.WithBoard(board))
	if err := client.Connect(ctx); err != nil {
		return nil, err
	}
	return New(base, client, board, opts...), nil
}

// Subscribe delivers a snapshot now and another after every change
// notification for this board, until ctx is done. Notifications are not
// coalesced: each one produces its own snapshot.
func (s *Store) Subscribe(ctx context.Context, fn store.SnapshotFunc) error {
	ch, err := s.feed.Listen(ctx)
	if err != nil {
		return fmt.Errorf("listen for board changes: %w", err)
	}

	if err := s.deliver(ctx, fn); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return errors.New("board change feed closed")
			}
			if ev.Type != events.EventBoardChanged || !ev.Matches(s.board) {
				continue
			}
			s.logger.Debug("board changed", "actor", ev.Actor, "sequence", ev.SequenceID)
			if err := s.deliver(ctx, fn); err != nil {
				s.logger.Warn("snapshot after change notification failed",
					"sequence", ev.SequenceID, "error", err)
			}
		}
	}
}

func (s *Store) deliver(ctx context.Context, fn store.SnapshotFunc) error {
	records, err := s.Store.ListColumns(ctx)
	if err != nil {
		return fmt.Errorf("snapshot board: %w", err)
	}
	fn(records)
	return nil
}

// publish announces a successful write. Failures are logged only: the write
// already happened and other clients catch up on their next notification.
func (s *Store) publish(err error) error {
	if err != nil {
		return err
	}
	_ = events.PublishWithRetry(s.feed, events.Event{
		Type:      events.EventBoardChanged,
		Board:     s.board,
		Actor:     s.actor,
		Timestamp: time.Now(),
	}, publishRetries)
	return nil
}

// CreateColumn implements store.ColumnWriter
func (s *Store) CreateColumn(ctx context.Context, col models.NewColumn) (types.ColumnID, error) {
	id, err := s.Store.CreateColumn(ctx, col)
	return id, s.publish(err)
}

// UpdateColumn implements store.ColumnWriter
func (s *Store) UpdateColumn(ctx context.Context, id types.ColumnID, patch models.ColumnPatch) error {
	return s.publish(s.Store.UpdateColumn(ctx, id, patch))
}

// DeleteColumn implements store.ColumnWriter
func (s *Store) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return s.publish(s.Store.DeleteColumn(ctx, id))
}

// CreateCard implements store.CardWriter
func (s *Store) CreateCard(ctx context.Context, columnID types.ColumnID, card models.NewCard) (types.CardID, error) {
	id, err := s.Store.CreateCard(ctx, columnID, card)
	return id, s.publish(err)
}

// UpdateCard implements store.CardWriter
func (s *Store) UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, patch models.CardPatch) error {
	return s.publish(s.Store.UpdateCard(ctx, columnID, cardID, patch))
}

// DeleteCard implements store.CardWriter
func (s *Store) DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	return s.publish(s.Store.DeleteCard(ctx, columnID, cardID))
}

// Close closes the feed and the wrapped store
func (s *Store) Close() error {
	return errors.Join(s.feed.Close(), s.Store.Close())
}

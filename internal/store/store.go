// Package store defines the persistence contract the board reconciler writes
// through. Bindings (local sqlite, REST, realtime) live in their own packages.
package store

import (
	"context"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ColumnReader defines read operations for the columns tree.
type ColumnReader interface {
	// ListColumns returns every column with its cards. Order of the
	// returned slice and of each card map is unspecified.
	ListColumns(ctx context.Context) ([]models.ColumnRecord, error)
}

// ColumnWriter defines write operations for columns.
type ColumnWriter interface {
	CreateColumn(ctx context.Context, col models.NewColumn) (types.ColumnID, error)
	UpdateColumn(ctx context.Context, id types.ColumnID, patch models.ColumnPatch) error
	// DeleteColumn removes the column and all of its cards.
	DeleteColumn(ctx context.Context, id types.ColumnID) error
}

// CardWriter defines write operations for cards.
type CardWriter interface {
	CreateCard(ctx context.Context, columnID types.ColumnID, card models.NewCard) (types.CardID, error)
	UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, patch models.CardPatch) error
	DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error
}

// Store is the full persistence contract.
type Store interface {
	ColumnReader
	ColumnWriter
	CardWriter

	// Close releases the binding's resources
	Close() error
}

// SnapshotFunc receives a complete columns tree
type SnapshotFunc func(records []models.ColumnRecord)

// Subscriber is implemented by bindings that push snapshots instead of
// waiting to be polled.
type Subscriber interface {
	// Subscribe calls fn with the current tree and again after every upstream
	// change until ctx is done. It blocks until the subscription ends.
	Subscribe(ctx context.Context, fn SnapshotFunc) error
}

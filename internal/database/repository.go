package database

import (
	"context"
	"database/sql"

	"github.com/thenoetrevino/todoboard/internal/store"
)

// Repository is the SQLite store.Store. It composes the column and card
// repositories using struct embedding.
type Repository struct {
	*ColumnRepo
	*CardRepo
	db *sql.DB
}

var _ store.Store = (*Repository)(nil)

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		ColumnRepo: &ColumnRepo{db: db},
		CardRepo:   &CardRepo{db: db},
		db:         db,
	}
}

// Open initializes the database at path and wraps it
func Open(ctx context.Context, path string) (*Repository, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// DB exposes the underlying connection
func (r *Repository) DB() *sql.DB {
	return r.db
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}

// Package testutil holds fixtures shared by package tests: in-memory boards
// and a throwaway daemon.
package testutil

import (
	"context"
	"testing"

	"github.com/thenoetrevino/todoboard/internal/database"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// SetupTestRepo opens a migrated in-memory SQLite board. It is closed by
// test cleanup.
func SetupTestRepo(t *testing.T) *database.Repository {
	t.Helper()

	repo, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// CreateTestColumn inserts a column with the given order
func CreateTestColumn(t *testing.T, repo *database.Repository, name string, order int) types.ColumnID {
	t.Helper()

	id, err := repo.CreateColumn(context.Background(), models.NewColumn{Name: name, Order: order})
	if err != nil {
		t.Fatalf("Failed to create test column %q: %v", name, err)
	}
	return id
}

// CreateTestCard inserts a card with the given order
func CreateTestCard(t *testing.T, repo *database.Repository, columnID types.ColumnID, text string, order int) types.CardID {
	t.Helper()

	id, err := repo.CreateCard(context.Background(), columnID, models.NewCard{Text: text, Order: order})
	if err != nil {
		t.Fatalf("Failed to create test card %q: %v", text, err)
	}
	return id
}

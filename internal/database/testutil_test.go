package database

import (
	"context"
	"database/sql"
	"testing"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestRepo creates an in-memory database with the full schema
func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = repo.Close() })
	return repo
}

// createTestColumn inserts a column through the repository
func createTestColumn(t *testing.T, repo *Repository, name string, order int) types.ColumnID {
	t.Helper()
	id, err := repo.CreateColumn(context.Background(), models.NewColumn{Name: name, Order: order})
	if err != nil {
		t.Fatalf("Failed to create test column: %v", err)
	}
	return id
}

// createTestCard inserts a card through the repository
func createTestCard(t *testing.T, repo *Repository, columnID types.ColumnID, text string, order int) types.CardID {
	t.Helper()
	id, err := repo.CreateCard(context.Background(), columnID, models.NewCard{Text: text, Order: order})
	if err != nil {
		t.Fatalf("Failed to create test card: %v", err)
	}
	return id
}

// findRecord returns the listed record for id
func findRecord(t *testing.T, repo *Repository, id types.ColumnID) (models.ColumnRecord, bool) {
	t.Helper()
	records, err := repo.ListColumns(context.Background())
	if err != nil {
		t.Fatalf("ListColumns failed: %v", err)
	}
	for _, rec := range records {
		if rec.ID == id {
			return rec, true
		}
	}
	return models.ColumnRecord{}, false
}

func countRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("Failed to count %s: %v", table, err)
	}
	return n
}

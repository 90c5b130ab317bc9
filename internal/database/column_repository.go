package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ColumnRepo handles all column-related database operations.
type ColumnRepo struct {
	db *sql.DB
}

// ListColumns returns every column with its cards. Both tables are read in
// one transaction so the snapshot is consistent.
func (r *ColumnRepo) ListColumns(ctx context.Context) ([]models.ColumnRecord, error) {
	var records []models.ColumnRecord
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		byID, order, err := queryColumns(ctx, tx)
		if err != nil {
			return err
		}
		if err := attachCards(ctx, tx, byID); err != nil {
			return err
		}
		records = make([]models.ColumnRecord, 0, len(order))
		for _, id := range order {
			records = append(records, *byID[id])
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

func queryColumns(ctx context.Context, tx *sql.Tx) (map[types.ColumnID]*models.ColumnRecord, []types.ColumnID, error) {
	rows, err := tx.QueryContext(ctx, `SELECT id, name, collapsed, sort_order FROM columns`)
	if err != nil {
		return nil, nil, fmt.Errorf("querying columns: %w", err)
	}
	defer rows.Close()

	byID := make(map[types.ColumnID]*models.ColumnRecord)
	var order []types.ColumnID
	for rows.Next() {
		var (
			id        string
			rec       models.ColumnRecord
			sortOrder sql.NullInt64
		)
		if err := rows.Scan(&id, &rec.Name, &rec.Collapsed, &sortOrder); err != nil {
			return nil, nil, fmt.Errorf("scanning column: %w", err)
		}
		rec.ID = types.ColumnID(id)
		rec.Order = nullInt64ToPtr(sortOrder)
		rec.Cards = make(map[types.CardID]models.CardRecord)
		byID[rec.ID] = &rec
		order = append(order, rec.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("iterating columns: %w", err)
	}
	return byID, order, nil
}

func attachCards(ctx context.Context, tx *sql.Tx, byID map[types.ColumnID]*models.ColumnRecord) error {
	// Fetch all cards in a single query and distribute them (no N+1)
	rows, err := tx.QueryContext(ctx, `SELECT id, column_id, text, sort_order FROM cards`)
	if err != nil {
		return fmt.Errorf("querying cards: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			id, columnID string
			card         models.CardRecord
			sortOrder    sql.NullInt64
		)
		if err := rows.Scan(&id, &columnID, &card.Text, &sortOrder); err != nil {
			return fmt.Errorf("scanning card: %w", err)
		}
		card.Order = nullInt64ToPtr(sortOrder)
		if col, ok := byID[types.ColumnID(columnID)]; ok {
			col.Cards[types.CardID(id)] = card
		}
	}
	return rows.Err()
}

// CreateColumn inserts a column and returns its new ID
func (r *ColumnRepo) CreateColumn(ctx context.Context, col models.NewColumn) (types.ColumnID, error) {
	id := newID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO columns (id, name, collapsed, sort_order) VALUES (?, ?, ?, ?)`,
		id, col.Name, col.Collapsed, col.Order,
	)
	if err != nil {
		return "", fmt.Errorf("inserting column: %w", err)
	}
	return types.ColumnID(id), nil
}

// UpdateColumn writes the fields set in patch
func (r *ColumnRepo) UpdateColumn(ctx context.Context, id types.ColumnID, patch models.ColumnPatch) error {
	var set setClause
	if patch.Name != nil {
		set.add("name", *patch.Name)
	}
	if patch.Collapsed != nil {
		set.add("collapsed", *patch.Collapsed)
	}
	if patch.Order != nil {
		set.add("sort_order", *patch.Order)
	}
	if set.empty() {
		return nil
	}

	args := append(set.args, string(id))
	res, err := r.db.ExecContext(ctx, `UPDATE columns SET `+set.String()+` WHERE id = ?`, args...)
	if err != nil {
		return fmt.Errorf("updating column %s: %w", id, err)
	}
	return expectOneRow(res, fmt.Errorf("update column %s: %w", id, ErrColumnNotFound))
}

// DeleteColumn removes a column. Its cards go with it through the foreign key
// cascade; the explicit delete keeps that true even if foreign keys were
// disabled on the connection.
func (r *ColumnRepo) DeleteColumn(ctx context.Context, id types.ColumnID) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM cards WHERE column_id = ?`, string(id)); err != nil {
			return fmt.Errorf("deleting cards of column %s: %w", id, err)
		}
		res, err := tx.ExecContext(ctx, `DELETE FROM columns WHERE id = ?`, string(id))
		if err != nil {
			return fmt.Errorf("deleting column %s: %w", id, err)
		}
		return expectOneRow(res, fmt.Errorf("delete column %s: %w", id, ErrColumnNotFound))
	})
}

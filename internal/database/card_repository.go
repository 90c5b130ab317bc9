package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// CardRepo handles all card-related database operations.
type CardRepo struct {
	db *sql.DB
}

// CreateCard inserts a card into a column and returns its new ID
func (r *CardRepo) CreateCard(ctx context.Context, columnID types.ColumnID, card models.NewCard) (types.CardID, error) {
	id := newID()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO cards (id, column_id, text, sort_order) VALUES (?, ?, ?, ?)`,
		id, string(columnID), card.Text, card.Order,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return "", fmt.Errorf("create card in %s: %w", columnID, ErrColumnNotFound)
		}
		return "", fmt.Errorf("inserting card: %w", err)
	}
	return types.CardID(id), nil
}

// UpdateCard writes the fields set in patch. The card must belong to columnID.
func (r *CardRepo) UpdateCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID, patch models.CardPatch) error {
	var set setClause
	if patch.Text != nil {
		set.add("text", *patch.Text)
	}
	if patch.Order != nil {
		set.add("sort_order", *patch.Order)
	}
	if set.empty() {
		return nil
	}

	args := append(set.args, string(cardID), string(columnID))
	res, err := r.db.ExecContext(ctx,
		`UPDATE cards SET `+set.String()+` WHERE id = ? AND column_id = ?`, args...)
	if err != nil {
		return fmt.Errorf("updating card %s: %w", cardID, err)
	}
	return expectOneRow(res, fmt.Errorf("update card %s: %w", cardID, ErrCardNotFound))
}

// DeleteCard removes one card from a column
func (r *CardRepo) DeleteCard(ctx context.Context, columnID types.ColumnID, cardID types.CardID) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM cards WHERE id = ? AND column_id = ?`, string(cardID), string(columnID))
	if err != nil {
		return fmt.Errorf("deleting card %s: %w", cardID, err)
	}
	return expectOneRow(res, fmt.Errorf("delete card %s: %w", cardID, ErrCardNotFound))
}

func isForeignKeyViolation(err error) bool {
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

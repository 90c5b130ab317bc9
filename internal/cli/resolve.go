package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ResolveColumn finds a column by ID, or by case-insensitive name when no ID
// matches
func ResolveColumn(columns []*models.Column, ref string) (*models.Column, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: column is required", ErrValidation)
	}

	for _, col := range columns {
		if col.ID == types.ColumnID(ref) {
			return col, nil
		}
	}

	var matches []*models.Column
	for _, col := range columns {
		if strings.EqualFold(strings.TrimSpace(col.Name), ref) {
			matches = append(matches, col)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("column %q: %w", ref, board.ErrColumnNotFound)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("%w: %d columns are named %q, use the column ID", ErrAmbiguous, len(matches), ref)
	}
}

// ResolveCard finds a card in col by ID, or by its 1-based position
func ResolveCard(col *models.Column, ref string) (*models.Card, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nil, fmt.Errorf("%w: card is required", ErrValidation)
	}

	if card, _ := col.FindCard(types.CardID(ref)); card != nil {
		return card, nil
	}

	if pos, err := strconv.Atoi(ref); err == nil && pos >= 1 && pos <= col.CardCount() {
		return col.Cards[pos-1], nil
	}

	return nil, fmt.Errorf("card %q in column %q: %w", ref, col.Name, board.ErrCardNotFound)
}

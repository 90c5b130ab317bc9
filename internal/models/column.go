package models

import "github.com/thenoetrevino/todoboard/internal/types"

// Column is a normalized board column (a "box") as the presentation sees it.
// Cards are already sorted by their order value.
type Column struct {
	ID        types.ColumnID `json:"id"`
	Name      string         `json:"name"`
	Collapsed bool           `json:"collapsed"`
	Order     int            `json:"order"`
	Cards     []*Card        `json:"cards"`
}

// CardCount returns the number of cards in the column
func (c *Column) CardCount() int {
	if c == nil {
		return 0
	}
	return len(c.Cards)
}

// FindCard returns the card with the given ID and its display index.
// Returns nil, -1 when the card is not in this column.
func (c *Column) FindCard(id types.CardID) (*Card, int) {
	if c == nil {
		return nil, -1
	}
	for i, card := range c.Cards {
		if card.ID == id {
			return card, i
		}
	}
	return nil, -1
}

// ColumnRecord is a column as stored by a persistence binding.
// Order is optional because records written by older clients (or by hand)
// may not carry one. Cards are keyed by their column-scoped ID.
type ColumnRecord struct {
	ID        types.ColumnID
	Name      string
	Collapsed bool
	Order     *int
	Cards     map[types.CardID]CardRecord
}

// NewColumn holds the fields written when a column is created
type NewColumn struct {
	Name      string
	Collapsed bool
	Order     int
}

// ColumnPatch is a partial column update.
// Fields with pointers are optional - nil means don't update.
type ColumnPatch struct {
	Name      *string
	Collapsed *bool
	Order     *int
}

// IsEmpty reports whether the patch would not change anything
func (p ColumnPatch) IsEmpty() bool {
	return p.Name == nil && p.Collapsed == nil && p.Order == nil
}

package models

import "github.com/thenoetrevino/todoboard/internal/types"

// Card is a single to-do item in a normalized column
type Card struct {
	ID    types.CardID `json:"id"`
	Text  string       `json:"text"`
	Order int          `json:"order"`
}

// CardRecord is a card as stored by a persistence binding.
// Order is nil when the stored card has none.
type CardRecord struct {
	Text  string
	Order *int
}

// NewCard holds the fields written when a card is created
type NewCard struct {
	Text  string
	Order int
}

// CardPatch is a partial card update.
// Fields with pointers are optional - nil means don't update.
type CardPatch struct {
	Text  *string
	Order *int
}

// IsEmpty reports whether the patch would not change anything
func (p CardPatch) IsEmpty() bool {
	return p.Text == nil && p.Order == nil
}

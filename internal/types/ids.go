package types

// ID types document what each string represents in the board model.
// Both kinds are assigned by the persistence binding, never by the client.

// ColumnID identifies a column (box) on the board
type ColumnID string

// CardID identifies a card within its parent column. It is only unique inside
// that column's card map: moving a card to another column gives it a new ID.
type CardID string

// String returns the raw identifier
func (id ColumnID) String() string {
	return string(id)
}

func (id CardID) String() string {
	return string(id)
}

// IsZero reports whether the ID is unset
func (id ColumnID) IsZero() bool {
	return id == ""
}

func (id CardID) IsZero() bool {
	return id == ""
}

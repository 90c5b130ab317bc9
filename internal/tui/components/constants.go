package components

const (
	ColumnWidth   = 30 // ColumnWidth is the fixed width of every column
	CardWidth     = 26 // CardWidth is the fixed width of a card inside a column
	cardTextWidth = 22 // wrap width for card text
	columnGap     = 1  // spaces between columns

	// CardsTopOffset is the number of rows between a column's top edge and
	// its first card: top border, header, spacer
	CardsTopOffset = 3
)

package tui

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/types"
)

const (
	// boardTop is the screen row where columns start: title bar, spacer
	boardTop = 2
	// statusBarHeight is the footer below the board
	statusBarHeight = 1
)

// cardBox is where a card is drawn, in screen rows
type cardBox struct {
	ID     types.CardID
	Top    int
	Height int
}

// columnBox is where a column is drawn on screen
type columnBox struct {
	Index  int // position in Model.Columns
	ID     types.ColumnID
	X      int
	Width  int
	Height int
	Cards  []cardBox
}

// contains reports whether screen column x falls inside the column
func (c columnBox) contains(x int) bool {
	return x >= c.X && x < c.X+c.Width
}

// inHeader reports whether screen row y is on the column's header rows
func (c columnBox) inHeader(y int) bool {
	return y >= boardTop && y < boardTop+components.CardsTopOffset
}

// cardAt returns the index of the card drawn at row y, or -1
func (c columnBox) cardAt(y int) int {
	for i, card := range c.Cards {
		if y >= card.Top && y < card.Top+card.Height {
			return i
		}
	}
	return -1
}

// spans lists the vertical extent of every card except skip, in display
// order, for board.DropIndex
func (c columnBox) spans(skip types.CardID) []board.Span {
	spans := make([]board.Span, 0, len(c.Cards))
	for _, card := range c.Cards {
		if card.ID == skip {
			continue
		}
		spans = append(spans, board.Span{Top: float64(card.Top), Height: float64(card.Height)})
	}
	return spans
}

// columnHeight is the height every expanded column is padded to
func (m *Model) columnHeight() int {
	return max(m.UiState.Height()-boardTop-statusBarHeight, 0)
}

// visibleColumns is how many columns fit across the screen
func (m *Model) visibleColumns() int {
	width := lipgloss.Width(components.RenderColumn(components.ColumnProps{
		Column:       &models.Column{},
		SelectedCard: -1,
	}))
	return max((m.UiState.Width()+components.ColumnGap())/(width+components.ColumnGap()), 1)
}

// layout computes where each visible column and card is drawn. It measures
// the same components the view renders, so hit testing matches the screen.
func (m *Model) layout() []columnBox {
	offset := m.UiState.ViewportOffset()
	end := min(offset+m.visibleColumns(), len(m.Columns))
	if offset >= end {
		return nil
	}

	boxes := make([]columnBox, 0, end-offset)
	x := 0
	for i := offset; i < end; i++ {
		col := m.Columns[i]
		rendered := components.RenderColumn(components.ColumnProps{
			Column:       col,
			SelectedCard: -1,
			Height:       m.columnHeight(),
		})

		box := columnBox{
			Index:  i,
			ID:     col.ID,
			X:      x,
			Width:  lipgloss.Width(rendered),
			Height: lipgloss.Height(rendered),
		}
		if !col.Collapsed {
			top := boardTop + components.CardsTopOffset
			for _, card := range col.Cards {
				h := lipgloss.Height(components.RenderCard(card, false, false))
				box.Cards = append(box.Cards, cardBox{ID: card.ID, Top: top, Height: h})
				top += h
			}
		}

		boxes = append(boxes, box)
		x += box.Width + components.ColumnGap()
	}
	return boxes
}

// columnAt returns the column drawn at screen column x
func columnAt(boxes []columnBox, x int) (columnBox, bool) {
	for _, b := range boxes {
		if b.contains(x) {
			return b, true
		}
	}
	return columnBox{}, false
}

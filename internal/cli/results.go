package cli

import (
	"strings"

	"github.com/thenoetrevino/todoboard/internal/cli/styles"
	"github.com/thenoetrevino/todoboard/internal/models"
)

// CardView is a card as commands report it. Position is 1-based.
type CardView struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Order    int    `json:"order"`
	Position int    `json:"position"`
}

// ColumnView is a column as commands report it
type ColumnView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Collapsed bool       `json:"collapsed"`
	Order     int        `json:"order"`
	Cards     []CardView `json:"cards"`
}

// NewColumnView converts a normalized column
func NewColumnView(col *models.Column) ColumnView {
	cards := make([]CardView, len(col.Cards))
	for i, card := range col.Cards {
		cards[i] = CardView{
			ID:       card.ID.String(),
			Text:     card.Text,
			Order:    card.Order,
			Position: i + 1,
		}
	}
	return ColumnView{
		ID:        col.ID.String(),
		Name:      col.Name,
		Collapsed: col.Collapsed,
		Order:     col.Order,
		Cards:     cards,
	}
}

// BoardView is the whole board
type BoardView struct {
	Columns []ColumnView `json:"columns"`

	rendered string
}

// NewBoardView converts the reconciler's view. rendered is the human form.
func NewBoardView(columns []*models.Column, rendered string) *BoardView {
	views := make([]ColumnView, len(columns))
	for i, col := range columns {
		views[i] = NewColumnView(col)
	}
	return &BoardView{Columns: views, rendered: rendered}
}

// Pretty implements Pretty
func (b *BoardView) Pretty() string {
	return b.rendered
}

// GetID lists the column IDs, one per line, for quiet output
func (b *BoardView) GetID() string {
	ids := make([]string, len(b.Columns))
	for i, col := range b.Columns {
		ids[i] = col.ID
	}
	return strings.Join(ids, "\n")
}

// Message is the outcome of a write command
type Message struct {
	ID     string `json:"id,omitempty"`
	Action string `json:"action"`
	Text   string `json:"message"`
}

// GetID implements IDer
func (m *Message) GetID() string {
	return m.ID
}

// Pretty implements Pretty
func (m *Message) Pretty() string {
	return styles.Success(m.Text)
}

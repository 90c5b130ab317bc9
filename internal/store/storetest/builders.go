package storetest

import (
	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// Col builds a column record. Use a negative order for "no order stored".
func Col(id string, name string, order int, cards ...CardSpec) models.ColumnRecord {
	rec := models.ColumnRecord{
		ID:    types.ColumnID(id),
		Name:  name,
		Cards: make(map[types.CardID]models.CardRecord, len(cards)),
	}
	if order >= 0 {
		rec.Order = models.IntPtr(order)
	}
	for _, c := range cards {
		card := models.CardRecord{Text: c.Text}
		if c.Order >= 0 {
			card.Order = models.IntPtr(c.Order)
		}
		rec.Cards[types.CardID(c.ID)] = card
	}
	return rec
}

// CardSpec describes a card for Col. A negative Order means "no order stored".
type CardSpec struct {
	ID    string
	Text  string
	Order int
}

// Card is shorthand for a CardSpec
func Card(id, text string, order int) CardSpec {
	return CardSpec{ID: id, Text: text, Order: order}
}

package board

import (
	"cmp"
	"slices"

	"github.com/thenoetrevino/todoboard/internal/models"
)

// Normalize converts an unordered columns tree into the ordered view.
// Missing order values become models.MissingOrder, columns are sorted by
// order and each column's cards by order. Equal orders fall back to ID so the
// result does not depend on map iteration. Normalizing the same snapshot twice
// yields the same view.
func Normalize(records []models.ColumnRecord) []*models.Column {
	columns := make([]*models.Column, 0, len(records))
	for _, rec := range records {
		col := &models.Column{
			ID:        rec.ID,
			Name:      rec.Name,
			Collapsed: rec.Collapsed,
			Order:     models.OrderOrDefault(rec.Order),
			Cards:     make([]*models.Card, 0, len(rec.Cards)),
		}
		for id, card := range rec.Cards {
			col.Cards = append(col.Cards, &models.Card{
				ID:    id,
				Text:  card.Text,
				Order: models.OrderOrDefault(card.Order),
			})
		}
		slices.SortFunc(col.Cards, func(a, b *models.Card) int {
			if c := cmp.Compare(a.Order, b.Order); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
		columns = append(columns, col)
	}

	slices.SortFunc(columns, func(a, b *models.Column) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return columns
}

// cloneColumns deep-copies a view so callers can't mutate reconciler state
func cloneColumns(columns []*models.Column) []*models.Column {
	out := make([]*models.Column, len(columns))
	for i, col := range columns {
		out[i] = cloneColumn(col)
	}
	return out
}

func cloneColumn(col *models.Column) *models.Column {
	c := *col
	c.Cards = make([]*models.Card, len(col.Cards))
	for i, card := range col.Cards {
		cc := *card
		c.Cards[i] = &cc
	}
	return &c
}

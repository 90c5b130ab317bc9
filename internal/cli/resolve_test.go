package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/board"
	"github.com/thenoetrevino/todoboard/internal/models"
)

func testColumns() []*models.Column {
	return []*models.Column{
		{ID: "c1", Name: "doing", Cards: []*models.Card{
			{ID: "k1", Text: "first", Order: 0},
			{ID: "k2", Text: "second", Order: 1},
		}},
		{ID: "c2", Name: "Done Today"},
		{ID: "c3", Name: "later"},
		{ID: "c4", Name: "later"},
	}
}

func TestResolveColumn(t *testing.T) {
	columns := testColumns()

	col, err := ResolveColumn(columns, "c2")
	require.NoError(t, err)
	assert.Equal(t, "Done Today", col.Name)

	col, err = ResolveColumn(columns, "  done today ")
	require.NoError(t, err)
	assert.Equal(t, "c2", col.ID.String())

	_, err = ResolveColumn(columns, "later")
	assert.ErrorIs(t, err, ErrAmbiguous)

	col, err = ResolveColumn(columns, "c4")
	require.NoError(t, err, "IDs disambiguate duplicate names")
	assert.Equal(t, "c4", col.ID.String())

	_, err = ResolveColumn(columns, "review")
	assert.ErrorIs(t, err, board.ErrColumnNotFound)

	_, err = ResolveColumn(columns, " ")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestResolveCard(t *testing.T) {
	col := testColumns()[0]

	card, err := ResolveCard(col, "k2")
	require.NoError(t, err)
	assert.Equal(t, "second", card.Text)

	card, err = ResolveCard(col, "1")
	require.NoError(t, err)
	assert.Equal(t, "k1", card.ID.String())

	for _, ref := range []string{"0", "3", "-1", "k9"} {
		_, err = ResolveCard(col, ref)
		assert.ErrorIs(t, err, board.ErrCardNotFound, ref)
	}

	_, err = ResolveCard(col, "")
	assert.ErrorIs(t, err, ErrValidation)
}

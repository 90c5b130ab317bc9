package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/todoboard/internal/tui/components"
	"github.com/thenoetrevino/todoboard/internal/tui/state"
)

func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseClickMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft}))
	return cmd
}

func motion(m *Model, x, y int) {
	m.Update(tea.MouseMotionMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft}))
}

func release(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseReleaseMsg(tea.Mouse{X: x, Y: y, Button: tea.MouseLeft}))
	return cmd
}

func TestLayout(t *testing.T) {
	m, _ := newTestModel(t, twoColumns()...)

	boxes := m.layout()
	require.Len(t, boxes, 2)
	assert.Equal(t, 0, boxes[0].X)
	assert.Equal(t, boxes[0].Width+components.ColumnGap(), boxes[1].X)

	cards := boxes[0].Cards
	require.Len(t, cards, 4)
	assert.Equal(t, boardTop+components.CardsTopOffset, cards[0].Top)
	for i := 1; i < len(cards); i++ {
		assert.Equal(t, cards[i-1].Top+cards[i-1].Height, cards[i].Top, "cards stack without gaps")
	}
	assert.Empty(t, boxes[1].Cards)

	_, ok := columnAt(boxes, boxes[1].X+boxes[1].Width+5)
	assert.False(t, ok)
}

func TestDragCardWithinColumn(t *testing.T) {
	m, _ := newTestModel(t, twoColumns()...)
	boxes := m.layout()
	doing := boxes[0]
	x := doing.X + 2

	assert.Nil(t, click(m, x, doing.Cards[3].Top+1))
	assert.Equal(t, 3, m.UiState.SelectedCard(), "click selects the card")
	require.Equal(t, state.DragCard, m.UiState.Drag().Kind)

	motion(m, x, doing.Cards[0].Top)
	assert.Equal(t, doing.Cards[0].Top, m.UiState.Drag().Y)

	run(t, m, release(m, x, doing.Cards[0].Top))
	assert.Equal(t, []string{"D", "A", "B", "C"}, cardTexts(m.Columns[0]))
	assert.Equal(t, 0, m.UiState.SelectedCard())
	assert.False(t, m.UiState.Drag().Active())
}

func TestDropInPlace(t *testing.T) {
	m, mem := newTestModel(t, twoColumns()...)
	doing := m.layout()[0]
	x, y := doing.X+2, doing.Cards[3].Top+1

	click(m, x, y)
	assert.Nil(t, release(m, x, y), "dropping where it started writes nothing")
	assert.Empty(t, mem.Writes())
}

func TestDragCardAcrossColumns(t *testing.T) {
	m, _ := newTestModel(t, twoColumns()...)
	boxes := m.layout()

	click(m, boxes[0].X+2, boxes[0].Cards[1].Top)
	run(t, m, release(m, boxes[1].X+2, boxes[1].Height-1))

	assert.Equal(t, []string{"A", "C", "D"}, cardTexts(m.Columns[0]))
	assert.Equal(t, []string{"B"}, cardTexts(m.Columns[1]))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
}

func TestDragColumn(t *testing.T) {
	m, _ := newTestModel(t, twoColumns()...)
	boxes := m.layout()

	click(m, boxes[1].X+2, boardTop+1)
	require.Equal(t, state.DragColumn, m.UiState.Drag().Kind)
	assert.Equal(t, 1, m.UiState.SelectedColumn())

	run(t, m, release(m, boxes[0].X+2, boardTop+1))
	assert.Equal(t, []string{"done today", "doing"}, columnNames(m.Columns))
	assert.Equal(t, 0, m.UiState.SelectedColumn())
}

func TestDropOutsideCancels(t *testing.T) {
	m, mem := newTestModel(t, twoColumns()...)
	boxes := m.layout()

	click(m, boxes[0].X+2, boxes[0].Cards[0].Top)
	assert.Nil(t, release(m, boxes[1].X+boxes[1].Width+5, boardTop+4))
	assert.False(t, m.UiState.Drag().Active())
	assert.Empty(t, mem.Writes())
}

func TestMouseIgnoredOutsideNormalMode(t *testing.T) {
	m, _ := newTestModel(t, twoColumns()...)
	doing := m.layout()[0]

	press(m, "?")
	click(m, doing.X+2, doing.Cards[2].Top)
	assert.False(t, m.UiState.Drag().Active())
	assert.Equal(t, 0, m.UiState.SelectedCard())

	assert.Nil(t, release(m, doing.X+2, doing.Cards[0].Top), "release without a drag does nothing")
}

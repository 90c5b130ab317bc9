package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/todoboard/internal/config"
	"github.com/thenoetrevino/todoboard/internal/models"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func testColumn() *models.Column {
	return &models.Column{ID: "c1", Name: "doing", Cards: []*models.Card{
		{ID: "k1", Text: "short"},
		{ID: "k2", Text: "a much longer card text that has to wrap over several lines"},
	}}
}

func TestRenderCardWrapsText(t *testing.T) {
	short := RenderCard(&models.Card{Text: "short"}, false, false)
	long := RenderCard(testColumn().Cards[1], false, false)

	assert.Equal(t, 3, lipgloss.Height(short), "border plus one line")
	assert.Greater(t, lipgloss.Height(long), 3)
	assert.Equal(t, lipgloss.Width(short), lipgloss.Width(long), "cards have a fixed width")
}

func TestRenderCardStateKeepsSize(t *testing.T) {
	card := testColumn().Cards[1]
	plain := RenderCard(card, false, false)

	for _, rendered := range []string{RenderCard(card, true, false), RenderCard(card, false, true)} {
		assert.Equal(t, lipgloss.Height(plain), lipgloss.Height(rendered))
		assert.Equal(t, lipgloss.Width(plain), lipgloss.Width(rendered))
	}
}

func TestWrapTextBreaksLongWords(t *testing.T) {
	out := WrapText(strings.Repeat("x", 50), 20)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestRenderColumn(t *testing.T) {
	col := testColumn()
	out := RenderColumn(ColumnProps{Column: col, SelectedCard: -1})

	assert.Contains(t, out, "▾ doing (2)")
	assert.Contains(t, out, "short")

	// cards start CardsTopOffset rows below the column's top edge
	lines := strings.Split(out, "\n")
	assert.Contains(t, lines[CardsTopOffset+1], "short")
}

func TestRenderColumnCollapsed(t *testing.T) {
	col := testColumn()
	col.Collapsed = true
	out := RenderColumn(ColumnProps{Column: col, SelectedCard: -1, Height: 30})

	assert.Contains(t, out, "▸ doing (2)")
	assert.NotContains(t, out, "short")
	assert.Equal(t, 3, lipgloss.Height(out), "collapsed columns ignore the height")
}

func TestRenderColumnEmpty(t *testing.T) {
	out := RenderColumn(ColumnProps{Column: &models.Column{Name: "done today"}, SelectedCard: -1})
	assert.Contains(t, out, "No cards")
}

func TestRenderColumnHeight(t *testing.T) {
	out := RenderColumn(ColumnProps{Column: testColumn(), SelectedCard: -1, Height: 30})
	assert.Equal(t, 30, lipgloss.Height(out))
}

func TestRenderBoard(t *testing.T) {
	a := RenderColumn(ColumnProps{Column: testColumn(), SelectedCard: -1})
	b := RenderColumn(ColumnProps{Column: &models.Column{Name: "done"}, SelectedCard: -1})

	board := RenderBoard([]string{a, b})
	assert.Equal(t, lipgloss.Width(a)+ColumnGap()+lipgloss.Width(b), lipgloss.Width(board))
	assert.Empty(t, RenderBoard(nil))
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 80, Backend: "local"})
	assert.Contains(t, out, "todoboard · local · polling")
	assert.Contains(t, out, "press ? for help")
	assert.Equal(t, 80, lipgloss.Width(out))

	out = RenderStatusBar(StatusBarProps{Width: 80, Backend: "realtime", Live: true, Dragging: true})
	assert.Contains(t, out, "live")
	assert.Contains(t, out, "release to drop")
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "abcd…", truncate("abcdefgh", 5))
}

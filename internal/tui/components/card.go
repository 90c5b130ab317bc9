package components

import (
	"charm.land/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
)

// RenderCard renders a single card. The text is word-wrapped, so the height
// grows with the text; selection and dragging only change colors.
//
//	╭────────────────────────╮
//	│ {Card text, wrapped}   │
//	╰────────────────────────╯
func RenderCard(card *models.Card, selected, dragging bool) string {
	style := CardStyle
	switch {
	case dragging:
		style = style.
			BorderForeground(lipgloss.Color(theme.Subtle)).
			Foreground(lipgloss.Color(theme.Subtle))
	case selected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(WrapText(card.Text, cardTextWidth))
}

// WrapText wraps text at word boundaries, hard-breaking words longer than
// width
func WrapText(text string, width int) string {
	return wrap.String(wordwrap.String(text, width), width)
}

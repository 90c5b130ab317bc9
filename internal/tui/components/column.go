package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todoboard/internal/models"
	"github.com/thenoetrevino/todoboard/internal/tui/theme"
	"github.com/thenoetrevino/todoboard/internal/types"
)

// ColumnProps describes how one column is drawn
type ColumnProps struct {
	Column *models.Column

	// Selected is set for the column under the cursor
	Selected bool
	// SelectedCard is the index of the highlighted card, -1 for none
	SelectedCard int
	// DropTarget highlights the column a drag would land in
	DropTarget bool
	// Dragging is the card being dragged, drawn dimmed
	Dragging types.CardID
	// Height is the minimum total height, 0 for auto
	Height int
}

// RenderColumn renders a complete column with its title and cards.
// Collapsed columns render the header only.
//
// Layout:
//
//	▾ {Column Name} ({count})
//
//	{Card 1}
//	{Card 2}
//	...
func RenderColumn(props ColumnProps) string {
	col := props.Column

	marker := "▾"
	if col.Collapsed {
		marker = "▸"
	}
	header := TitleStyle.Render(truncate(fmt.Sprintf("%s %s (%d)", marker, col.Name, col.CardCount()), CardWidth))

	style := ColumnStyle
	switch {
	case props.DropTarget:
		style = style.BorderForeground(lipgloss.Color(theme.DropTarget))
	case props.Selected:
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	case col.Collapsed:
		style = style.BorderForeground(lipgloss.Color(theme.CollapsedBorder))
	}

	if col.Collapsed {
		return style.Render(header)
	}

	parts := []string{header, ""}
	if col.CardCount() == 0 {
		parts = append(parts, SubtleStyle.Render("No cards"))
	}
	for i, card := range col.Cards {
		selected := props.Selected && i == props.SelectedCard
		parts = append(parts, RenderCard(card, selected, card.ID == props.Dragging))
	}
	content := strings.Join(parts, "\n")

	if props.Height > 0 {
		if pad := props.Height - 2 - lipgloss.Height(content); pad > 0 {
			content += strings.Repeat("\n", pad)
		}
	}
	return style.Render(content)
}

// RenderBoard joins rendered columns side by side
func RenderBoard(columns []string) string {
	if len(columns) == 0 {
		return ""
	}
	gap := strings.Repeat(" ", columnGap)
	parts := make([]string, 0, 2*len(columns)-1)
	for i, col := range columns {
		if i > 0 {
			parts = append(parts, gap)
		}
		parts = append(parts, col)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// ColumnGap returns the spacing RenderBoard puts between columns
func ColumnGap() int {
	return columnGap
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

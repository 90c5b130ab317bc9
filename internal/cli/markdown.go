package cli

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"

	"github.com/thenoetrevino/todoboard/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// BoardMarkdown renders the board as a Markdown document: one section per
// column, cards as a numbered list in display order
func BoardMarkdown(columns []*models.Column) string {
	var sb strings.Builder
	sb.WriteString("# Board\n")

	if len(columns) == 0 {
		sb.WriteString("\n_No columns_\n")
		return sb.String()
	}

	for _, col := range columns {
		fmt.Fprintf(&sb, "\n## %s (%d)", col.Name, col.CardCount())
		if col.Collapsed {
			sb.WriteString(" · collapsed")
		}
		sb.WriteString("\n\n")

		if col.CardCount() == 0 {
			sb.WriteString("_No cards_\n")
			continue
		}
		for i, card := range col.Cards {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, strings.Join(strings.Fields(card.Text), " "))
		}
	}
	return sb.String()
}

// RenderMarkdown renders md for the terminal, falling back to the raw text
// when glamour fails
func RenderMarkdown(md string, width int) string {
	renderer, err := getRenderer(width)
	if err != nil {
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/todoboard/internal/tui/components"
)

// helpSection is a titled group of key bindings
type helpSection struct {
	title string
	keys  [][2]string // key, description
}

func (m *Model) helpSections() []helpSection {
	km := m.Config.KeyMappings
	return []helpSection{
		{"Navigation", [][2]string{
			{km.PrevColumn + "/" + km.NextColumn, "previous / next column"},
			{km.PrevCard + "/" + km.NextCard, "previous / next card"},
		}},
		{"Cards", [][2]string{
			{km.AddCard, "add card"},
			{km.EditCard, "edit card"},
			{km.DeleteCard, "delete card"},
			{km.MoveCardUp + "/" + km.MoveCardDown, "move card up / down"},
			{km.MoveCardLeft + "/" + km.MoveCardRight, "move card to previous / next column"},
		}},
		{"Columns", [][2]string{
			{km.CreateColumn, "create column"},
			{km.RenameColumn, "rename column"},
			{km.DeleteColumn, "delete column"},
			{km.ToggleColumn, "collapse / expand column"},
			{km.MoveColumnLeft + "/" + km.MoveColumnRight, "move column left / right"},
		}},
		{"Other", [][2]string{
			{km.Refresh, "reload board"},
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
			{"mouse", "drag cards and column headers"},
		}},
	}
}

// viewHelp renders the help screen
func (m *Model) viewHelp() string {
	var sb strings.Builder
	for i, section := range m.helpSections() {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(components.TitleStyle.Render(section.title) + "\n")
		for _, k := range section.keys {
			fmt.Fprintf(&sb, "  %-8s %s\n", k[0], k[1])
		}
	}
	content := strings.TrimRight(sb.String(), "\n")
	return components.HelpBoxStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		content,
		"",
		components.SubtleStyle.Render("Press "+m.Config.KeyMappings.ShowHelp+" or Esc to close"),
	))
}

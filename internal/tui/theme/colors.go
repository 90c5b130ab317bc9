// Package theme holds the active colors for TUI rendering
package theme

import "github.com/thenoetrevino/todoboard/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight       string
	Subtle          string
	Normal          string
	Title           string
	Create          string
	Edit            string
	Delete          string
	ColumnBorder    string
	CollapsedBorder string
	CardBorder      string
	CardBg          string
	SelectedBorder  string
	SelectedBg      string
	DropTarget      string
	InfoFg          string
	InfoBg          string
	WarningFg       string
	WarningBg       string
	ErrorFg         string
	ErrorBg         string
	StatusBarBg     string
	StatusBarText   string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Create = colors.Create
	Edit = colors.Edit
	Delete = colors.Delete
	ColumnBorder = colors.ColumnBorder
	CollapsedBorder = colors.CollapsedBorder
	CardBorder = colors.CardBorder
	CardBg = colors.CardBackground
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	DropTarget = colors.DropTarget
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	WarningFg = colors.WarningFg
	WarningBg = colors.WarningBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}

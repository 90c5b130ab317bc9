package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent: "#FFFFFF",

		Create: "#FFFFFF",
		Edit:   "#FFFFFF",
		Delete: "#FFFFFF",

		ColumnBorder:    "#808080",
		CollapsedBorder: "#404040",
		CardBorder:      "#606060",
		CardBackground:  "#000000",
		SelectedBorder:  "#FFFFFF",
		SelectedBg:      "#303030",
		DropTarget:      "#FFFFFF",

		Title:  "#FFFFFF",
		Subtle: "#808080",
		Normal: "#C0C0C0",

		InfoFg:    "#FFFFFF",
		InfoBg:    "#303030",
		WarningFg: "#FFFFFF",
		WarningBg: "#505050",
		ErrorFg:   "#000000",
		ErrorBg:   "#FFFFFF",

		StatusBarBg:   "#303030",
		StatusBarText: "#FFFFFF",
	}
}

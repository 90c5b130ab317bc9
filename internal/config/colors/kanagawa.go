package colors

// Kanagawa palette, shared by the dragon, wave and lotus presets
var palette = struct {
	dragonBlack1, dragonBlack3, dragonBlack4, dragonBlack6 string
	dragonWhite, dragonAsh, dragonViolet, dragonAqua      string
	dragonBlue, dragonBlue2, dragonGreen2, dragonRed      string

	sumiInk0, sumiInk4, sumiInk6, fujiWhite, fujiGray string
	oniViolet, crystalBlue, springGreen, waveRed      string
	waveAqua2, waveBlue1, carpYellow                  string

	lotusWhite3, lotusWhite5, lotusInk1, lotusGray  string
	lotusViolet4, lotusBlue4, lotusGreen, lotusRed  string
	lotusAqua, lotusYellow3, lotusBlue2             string

	winterBlue, winterYellow, winterRed, roninYellow, samuraiRed string
}{
	dragonBlack1: "#0D0C0C", dragonBlack3: "#181616", dragonBlack4: "#282727", dragonBlack6: "#625E5A",
	dragonWhite: "#C5C9C5", dragonAsh: "#737C73", dragonViolet: "#8992A7", dragonAqua: "#8EA4A2",
	dragonBlue: "#658594", dragonBlue2: "#8BA4B0", dragonGreen2: "#8A9A7B", dragonRed: "#C4746E",

	sumiInk0: "#16161D", sumiInk4: "#2A2A37", sumiInk6: "#54546D", fujiWhite: "#DCD7BA", fujiGray: "#727169",
	oniViolet: "#957FB8", crystalBlue: "#7E9CD8", springGreen: "#98BB6C", waveRed: "#E46876",
	waveAqua2: "#7AA89F", waveBlue1: "#223249", carpYellow: "#E6C384",

	lotusWhite3: "#F2ECBC", lotusWhite5: "#E4D794", lotusInk1: "#545464", lotusGray: "#8A8980",
	lotusViolet4: "#624C83", lotusBlue4: "#4D699B", lotusGreen: "#6F894E", lotusRed: "#C84053",
	lotusAqua: "#597B75", lotusYellow3: "#DE9800", lotusBlue2: "#B5CBD2",

	winterBlue: "#252535", winterYellow: "#49443C", winterRed: "#43242B", roninYellow: "#FF9E3B", samuraiRed: "#E82424",
}

// Dragon returns the Kanagawa Dragon color scheme (dark theme with warm earth tones)
func Dragon() *ColorScheme {
	return &ColorScheme{
		Preset: "dragon",

		Accent: palette.dragonViolet,

		Create: palette.dragonGreen2,
		Edit:   palette.dragonBlue2,
		Delete: palette.dragonRed,

		ColumnBorder:    palette.dragonBlack6,
		CollapsedBorder: palette.dragonBlack4,
		CardBorder:      palette.dragonBlack4,
		CardBackground:  palette.dragonBlack3,
		SelectedBorder:  palette.dragonAqua,
		SelectedBg:      palette.waveBlue1,
		DropTarget:      palette.roninYellow,

		Title:  palette.dragonBlue2,
		Subtle: palette.dragonAsh,
		Normal: palette.dragonWhite,

		InfoFg:    palette.dragonBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.dragonBlack1,
		StatusBarText: palette.dragonWhite,
	}
}

// Wave returns the Kanagawa Wave color scheme (the default dark variant)
func Wave() *ColorScheme {
	return &ColorScheme{
		Preset: "wave",

		Accent: palette.oniViolet,

		Create: palette.springGreen,
		Edit:   palette.crystalBlue,
		Delete: palette.waveRed,

		ColumnBorder:    palette.sumiInk6,
		CollapsedBorder: palette.sumiInk4,
		CardBorder:      palette.sumiInk4,
		CardBackground:  palette.sumiInk0,
		SelectedBorder:  palette.waveAqua2,
		SelectedBg:      palette.waveBlue1,
		DropTarget:      palette.carpYellow,

		Title:  palette.crystalBlue,
		Subtle: palette.fujiGray,
		Normal: palette.fujiWhite,

		InfoFg:    palette.crystalBlue,
		InfoBg:    palette.winterBlue,
		WarningFg: palette.roninYellow,
		WarningBg: palette.winterYellow,
		ErrorFg:   palette.samuraiRed,
		ErrorBg:   palette.winterRed,

		StatusBarBg:   palette.oniViolet,
		StatusBarText: palette.sumiInk0,
	}
}

// Lotus returns the Kanagawa Lotus color scheme (light theme)
func Lotus() *ColorScheme {
	return &ColorScheme{
		Preset: "lotus",

		Accent: palette.lotusViolet4,

		Create: palette.lotusGreen,
		Edit:   palette.lotusBlue4,
		Delete: palette.lotusRed,

		ColumnBorder:    palette.lotusGray,
		CollapsedBorder: palette.lotusWhite5,
		CardBorder:      palette.lotusWhite5,
		CardBackground:  palette.lotusWhite3,
		SelectedBorder:  palette.lotusAqua,
		SelectedBg:      palette.lotusBlue2,
		DropTarget:      palette.lotusYellow3,

		Title:  palette.lotusBlue4,
		Subtle: palette.lotusGray,
		Normal: palette.lotusInk1,

		InfoFg:    palette.lotusBlue4,
		InfoBg:    palette.lotusBlue2,
		WarningFg: palette.lotusYellow3,
		WarningBg: palette.lotusWhite5,
		ErrorFg:   palette.lotusRed,
		ErrorBg:   palette.lotusWhite3,

		StatusBarBg:   palette.lotusViolet4,
		StatusBarText: palette.lotusWhite3,
	}
}

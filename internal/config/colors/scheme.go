package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "dragon")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent string `yaml:"accent"`

	// Semantic colors
	Create string `yaml:"create"` // new column / card inputs
	Edit   string `yaml:"edit"`   // rename / edit inputs
	Delete string `yaml:"delete"` // delete confirmations

	// UI element colors
	ColumnBorder    string `yaml:"column_border"`
	CollapsedBorder string `yaml:"collapsed_border"`
	CardBorder      string `yaml:"card_border"`
	CardBackground  string `yaml:"card_background"`
	SelectedBorder  string `yaml:"selected_border"`
	SelectedBg      string `yaml:"selected_bg"`
	DropTarget      string `yaml:"drop_target"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg    string `yaml:"info_fg"`
	InfoBg    string `yaml:"info_bg"`
	WarningFg string `yaml:"warning_fg"`
	WarningBg string `yaml:"warning_bg"`
	ErrorFg   string `yaml:"error_fg"`
	ErrorBg   string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name. Unknown names fall back to
// the default scheme.
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "dragon":
		return Dragon()
	case "wave":
		return Wave()
	case "lotus":
		return Lotus()
	default:
		return Default()
	}
}

// fields lists every color slot, paired with its counterpart in other
func (c *ColorScheme) fields(other *ColorScheme) [][2]*string {
	return [][2]*string{
		{&c.Accent, &other.Accent},
		{&c.Create, &other.Create},
		{&c.Edit, &other.Edit},
		{&c.Delete, &other.Delete},
		{&c.ColumnBorder, &other.ColumnBorder},
		{&c.CollapsedBorder, &other.CollapsedBorder},
		{&c.CardBorder, &other.CardBorder},
		{&c.CardBackground, &other.CardBackground},
		{&c.SelectedBorder, &other.SelectedBorder},
		{&c.SelectedBg, &other.SelectedBg},
		{&c.DropTarget, &other.DropTarget},
		{&c.Title, &other.Title},
		{&c.Subtle, &other.Subtle},
		{&c.Normal, &other.Normal},
		{&c.InfoFg, &other.InfoFg},
		{&c.InfoBg, &other.InfoBg},
		{&c.WarningFg, &other.WarningFg},
		{&c.WarningBg, &other.WarningBg},
		{&c.ErrorFg, &other.ErrorFg},
		{&c.ErrorBg, &other.ErrorBg},
		{&c.StatusBarBg, &other.StatusBarBg},
		{&c.StatusBarText, &other.StatusBarText},
	}
}

// ApplyDefaults fills in missing color values using the preset as base
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}
	for _, pair := range c.fields(preset) {
		if *pair[0] == "" {
			*pair[0] = *pair[1]
		}
	}
}

// MergeFrom overrides colors with every non-empty value of other. A preset
// in other replaces the base preset.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" {
		c.Preset = other.Preset
	}
	for _, pair := range c.fields(&other) {
		if *pair[1] != "" {
			*pair[0] = *pair[1]
		}
	}
}

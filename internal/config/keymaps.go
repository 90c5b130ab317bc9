package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Cards
	AddCard       string `yaml:"add_card"`
	EditCard      string `yaml:"edit_card"`
	DeleteCard    string `yaml:"delete_card"`
	MoveCardLeft  string `yaml:"move_card_left"`
	MoveCardRight string `yaml:"move_card_right"`
	MoveCardUp    string `yaml:"move_card_up"`
	MoveCardDown  string `yaml:"move_card_down"`

	// Columns
	CreateColumn    string `yaml:"create_column"`
	RenameColumn    string `yaml:"rename_column"`
	DeleteColumn    string `yaml:"delete_column"`
	ToggleColumn    string `yaml:"toggle_column"`
	MoveColumnLeft  string `yaml:"move_column_left"`
	MoveColumnRight string `yaml:"move_column_right"`

	// Navigation
	PrevColumn string `yaml:"prev_column"`
	NextColumn string `yaml:"next_column"`
	PrevCard   string `yaml:"prev_card"`
	NextCard   string `yaml:"next_card"`

	// Other
	Refresh  string `yaml:"refresh"`
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		// Cards
		AddCard:       "a",
		EditCard:      "e",
		DeleteCard:    "d",
		MoveCardLeft:  "H",
		MoveCardRight: "L",
		MoveCardUp:    "K",
		MoveCardDown:  "J",

		// Columns
		CreateColumn:    "C",
		RenameColumn:    "R",
		DeleteColumn:    "X",
		ToggleColumn:    "space",
		MoveColumnLeft:  "<",
		MoveColumnRight: ">",

		// Navigation
		PrevColumn: "h",
		NextColumn: "l",
		PrevCard:   "k",
		NextCard:   "j",

		// Other
		Refresh:  "r",
		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.AddCard == "" {
		k.AddCard = defaults.AddCard
	}
	if k.EditCard == "" {
		k.EditCard = defaults.EditCard
	}
	if k.DeleteCard == "" {
		k.DeleteCard = defaults.DeleteCard
	}
	if k.MoveCardLeft == "" {
		k.MoveCardLeft = defaults.MoveCardLeft
	}
	if k.MoveCardRight == "" {
		k.MoveCardRight = defaults.MoveCardRight
	}
	if k.MoveCardUp == "" {
		k.MoveCardUp = defaults.MoveCardUp
	}
	if k.MoveCardDown == "" {
		k.MoveCardDown = defaults.MoveCardDown
	}
	if k.CreateColumn == "" {
		k.CreateColumn = defaults.CreateColumn
	}
	if k.RenameColumn == "" {
		k.RenameColumn = defaults.RenameColumn
	}
	if k.DeleteColumn == "" {
		k.DeleteColumn = defaults.DeleteColumn
	}
	if k.ToggleColumn == "" {
		k.ToggleColumn = defaults.ToggleColumn
	}
	if k.MoveColumnLeft == "" {
		k.MoveColumnLeft = defaults.MoveColumnLeft
	}
	if k.MoveColumnRight == "" {
		k.MoveColumnRight = defaults.MoveColumnRight
	}
	if k.PrevColumn == "" {
		k.PrevColumn = defaults.PrevColumn
	}
	if k.NextColumn == "" {
		k.NextColumn = defaults.NextColumn
	}
	if k.PrevCard == "" {
		k.PrevCard = defaults.PrevCard
	}
	if k.NextCard == "" {
		k.NextCard = defaults.NextCard
	}
	if k.Refresh == "" {
		k.Refresh = defaults.Refresh
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}

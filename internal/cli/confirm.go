package cli

import (
	"github.com/charmbracelet/huh"
)

// Confirm asks a yes/no question on the terminal. Tests replace it.
var Confirm = func(title, description string) (bool, error) {
	var confirmed bool
	err := huh.NewConfirm().
		Title(title).
		Description(description).
		Affirmative("Delete").
		Negative("Cancel").
		Value(&confirmed).
		Run()
	return confirmed, err
}

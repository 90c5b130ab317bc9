package tui

import "github.com/thenoetrevino/todoboard/internal/models"

// BoardChangedMsg carries a rebuilt board view
type BoardChangedMsg struct {
	Columns []*models.Column
}

// AlertMsg carries a failure that must be acknowledged
type AlertMsg struct {
	Message string
}

// writeDoneMsg reports the outcome of an intent sent to the reconciler
type writeDoneMsg struct {
	op  string
	err error
}

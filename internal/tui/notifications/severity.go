// Package notifications renders inline notices and blocking alerts
package notifications

// Severity represents the severity level of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

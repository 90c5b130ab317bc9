package state

// AlertState queues blocking failure alerts. While any alert is pending the
// board ignores every key except the one dismissing it.
type AlertState struct {
	pending []string
}

// NewAlertState creates an empty alert queue
func NewAlertState() *AlertState {
	return &AlertState{}
}

// Push queues an alert
func (s *AlertState) Push(message string) {
	s.pending = append(s.pending, message)
}

// Current returns the alert being shown
func (s *AlertState) Current() (string, bool) {
	if len(s.pending) == 0 {
		return "", false
	}
	return s.pending[0], true
}

// Dismiss drops the alert being shown
func (s *AlertState) Dismiss() {
	if len(s.pending) > 0 {
		s.pending = s.pending[1:]
	}
}

// Active reports whether an alert is blocking the board
func (s *AlertState) Active() bool {
	return len(s.pending) > 0
}

// Count returns the number of pending alerts
func (s *AlertState) Count() int {
	return len(s.pending)
}

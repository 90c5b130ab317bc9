package events

import "time"

// ProtocolVersion is sent with every message
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventBoardChanged EventType = "board_changed"
	EventPing         EventType = "ping"
	EventPong         EventType = "pong"
)

// Wire message types
const (
	MessageEvent     = "event"
	MessageSubscribe = "subscribe"
	MessagePing      = "ping"
	MessagePong      = "pong"
)

// Event represents a board change notification
type Event struct {
	Type       EventType
	Board      string    `json:",omitempty"` // which board was modified, empty for all
	Actor      string    `json:",omitempty"` // who made the change
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number for ordering
}

// Matches reports whether a subscriber to board should receive the event.
// An empty board on either side matches everything.
func (e Event) Matches(board string) bool {
	return e.Board == "" || board == "" || e.Board == board
}

// SubscribeMessage is sent by clients to choose which board they follow
type SubscribeMessage struct {
	Board string // empty = all boards
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:",omitempty"`
	Type      string            // "event", "subscribe", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

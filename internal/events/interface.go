package events

import "context"

// Publisher sends change notifications
type Publisher interface {
	SendEvent(event Event) error
}

// EventPublisher defines the interface for sending and receiving events.
// The realtime binding depends on it rather than on *Client so it can be
// tested without a daemon.
type EventPublisher interface {
	Publisher

	// Connect establishes a connection to the daemon socket
	Connect(ctx context.Context) error

	// Listen starts listening for events from the daemon
	Listen(ctx context.Context) (<-chan Event, error)

	// Subscribe changes the subscription to a specific board
	Subscribe(board string) error

	// Close closes the connection to the daemon and stops all goroutines
	Close() error
}

// Compile-time verification that *Client implements EventPublisher
var _ EventPublisher = (*Client)(nil)

// Package events is the client side of the board change feed: a JSON
// message stream over the daemon's Unix domain socket.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"
)

const (
	writeTimeout = 5 * time.Second
	readTimeout  = 60 * time.Second
)

// Client represents a connection to the board daemon. It sends change
// notifications immediately (one notification per write, never batched),
// receives the notifications of every client, and reconnects on failure.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex
	closed     bool

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	// Subscription state
	board string

	// Event tracking
	lastSequence int64

	logger *slog.Logger
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithBoard sets the board subscribed to on connect. Empty means all boards.
func WithBoard(board string) ClientOption {
	return func(c *Client) {
		c.board = board
	}
}

// WithReconnect sets how often and how patiently Listen reconnects
func WithReconnect(maxRetries int, baseDelay time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = maxRetries
		c.baseDelay = baseDelay
	}
}

// WithClientLogger sets the logger
func WithClientLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
func NewClient(socketPath string, opts ...ClientOption) *Client {
	c := &Client{
		socketPath: socketPath,
		maxRetries: 5,
		baseDelay:  1 * time.Second,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Board returns the currently subscribed board
func (c *Client) Board() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.board
}

// Connect establishes a connection to the daemon socket and sends the
// current subscription.
func (c *Client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return errors.New("client closed")
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", ClassifyDaemonError(err))
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)

	msg := Message{
		Version:   ProtocolVersion,
		Type:      MessageSubscribe,
		Subscribe: &SubscribeMessage{Board: c.board},
	}
	if err := c.writeLocked(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			c.logger.Error("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	return nil
}

// SendEvent sends an event to the daemon
func (c *Client) SendEvent(event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(Message{
		Version: ProtocolVersion,
		Type:    MessageEvent,
		Event:   &event,
	})
}

// Subscribe changes the subscription to a specific board.
// An empty board means all boards.
func (c *Client) Subscribe(board string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.board = board
	return c.writeLocked(Message{
		Version:   ProtocolVersion,
		Type:      MessageSubscribe,
		Subscribe: &SubscribeMessage{Board: board},
	})
}

// writeLocked must be called with c.mu held
func (c *Client) writeLocked(msg Message) error {
	if c.conn == nil {
		return ErrNotConnected
	}

	// Set a short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeTimeout)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}
	defer func() {
		_ = c.conn.SetWriteDeadline(time.Time{})
	}()

	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// It returns a channel that receives events and handles reconnection automatically.
// The channel is closed when ctx is done, the client is closed, or
// reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	c.mu.Lock()
	connected := c.conn != nil
	c.mu.Unlock()
	if !connected {
		return nil, ErrNotConnected
	}

	eventChan := make(chan Event, 10)
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

// listenLoop reads events from the daemon and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	// Unblock a pending Decode when ctx is cancelled
	stop := context.AfterFunc(ctx, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.conn != nil {
			_ = c.conn.SetReadDeadline(time.Now())
		}
	})
	defer stop()

	for {
		err := c.readEvents(ctx, eventChan)
		if ctx.Err() != nil || c.isClosed() {
			return
		}

		c.logger.Warn("connection to daemon lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			c.logger.Error("failed to reconnect to daemon, giving up", "attempts", c.maxRetries)
			return
		}
		c.logger.Info("reconnected to daemon")
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		var msg Message

		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return errors.New("connection closed")
		}
		if ctx.Err() != nil {
			c.mu.Unlock()
			return ctx.Err()
		}
		// Set read deadline to detect hung connections
		if err := c.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case MessageEvent:
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case MessagePing:
			c.mu.Lock()
			err := c.writeLocked(Message{Version: ProtocolVersion, Type: MessagePong})
			c.mu.Unlock()
			if err != nil && !isConnectionError(err) {
				c.logger.Warn("failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	return strings.Contains(errStr, "broken pipe") ||
		strings.Contains(errStr, "connection reset") ||
		strings.Contains(errStr, "use of closed network connection")
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
// It tries up to maxRetries times, doubling the delay each time.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay
	timer := time.NewTimer(delay)
	defer timer.Stop()

	for i := 0; i < c.maxRetries; i++ {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
		}

		c.mu.Lock()
		if c.conn != nil {
			_ = c.conn.Close()
			c.conn = nil
		}
		c.mu.Unlock()

		err := c.Connect(ctx)
		if err == nil {
			// A restarted daemon starts its sequence over
			c.lastSequence = 0
			return true
		}
		c.logger.Debug("reconnection attempt failed",
			"attempt", i+1,
			"max_retries", c.maxRetries,
			"retry_in", delay*2,
			"error", err)

		if c.isClosed() {
			return false
		}
		delay *= 2 // Exponential backoff: 1s, 2s, 4s, 8s, 16s
		timer.Reset(delay)
	}

	return false
}

func (c *Client) isClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// Close closes the connection to the daemon and stops all goroutines.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}
	return nil
}

// Package daemon is the change-feed hub of the realtime binding. Every client
// that writes to a board publishes a change event; the daemon stamps it with a
// sequence number and fans it out to every client following that board.
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/thenoetrevino/todoboard/internal/events"
)

// client represents a connected client to the daemon
type client struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	mu           sync.Mutex // Protects subscription and lastPong
	closeOnce    sync.Once  // Ensures send channel is closed only once
}

func (c *client) board() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.subscription.Board
}

// Server represents the board event daemon
type Server struct {
	socketPath      string
	listener        net.Listener
	clients         map[*client]bool
	mu              sync.RWMutex
	ctx             context.Context
	cancel          context.CancelFunc
	broadcast       chan events.Event
	metrics         *Metrics
	sequenceCounter atomic.Int64
	logger          *slog.Logger
	wg              sync.WaitGroup
	shutdownOnce    sync.Once

	broadcastBufferSize int
	clientBufferSize    int
	pingInterval        time.Duration
	staleAfter          time.Duration
}

// Option configures a Server
type Option func(*Server)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithPingInterval sets how often clients are pinged. Clients silent for
// three intervals are dropped.
func WithPingInterval(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.pingInterval = d
			s.staleAfter = 3 * d
		}
	}
}

// WithBufferSizes sets the broadcast queue and per-client send queue sizes
func WithBufferSizes(broadcast, client int) Option {
	return func(s *Server) {
		if broadcast > 0 {
			s.broadcastBufferSize = broadcast
		}
		if client > 0 {
			s.clientBufferSize = client
		}
	}
}

// getEnvInt reads an integer from an environment variable, returning defaultVal if not set or invalid
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates the socket and a server ready to Start
func NewServer(socketPath string, opts ...Option) (*Server, error) {
	dir := filepath.Dir(socketPath)
	if dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create socket directory: %w", err)
		}
	}

	// Remove stale socket file if it exists
	if _, err := os.Stat(socketPath); err == nil {
		if err := os.Remove(socketPath); err != nil {
			return nil, fmt.Errorf("failed to remove stale socket: %w", err)
		}
	}

	lc := net.ListenConfig{}
	listener, err := lc.Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	s := &Server{
		socketPath: socketPath,
		listener:   listener,
		clients:    make(map[*client]bool),
		ctx:        ctx,
		cancel:     cancel,
		metrics:    NewMetrics(),
		logger:     slog.Default(),

		// Buffer sizes are tunable from the environment for load testing
		broadcastBufferSize: getEnvInt("TODOBOARD_DAEMON_BROADCAST_BUFFER", 100),
		clientBufferSize:    getEnvInt("TODOBOARD_DAEMON_CLIENT_BUFFER", 10),
		pingInterval:        30 * time.Second,
		staleAfter:          90 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.broadcast = make(chan events.Event, s.broadcastBufferSize)

	return s, nil
}

// SocketPath returns the path clients dial
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Metrics returns the live counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the daemon until ctx is done or Shutdown is called. It runs the
// accept, broadcast and health monitoring loops and waits for all of them,
// including per-client goroutines, before returning.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "socket", s.socketPath)

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(s.ctx, cancel)
	defer stop()

	acceptErr := make(chan error, 1)
	s.wg.Add(3)
	go func() {
		defer s.wg.Done()
		acceptErr <- s.acceptLoop(runCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.broadcastLoop(runCtx)
	}()
	go func() {
		defer s.wg.Done()
		s.monitorHealth(runCtx)
	}()

	var err error
	select {
	case <-runCtx.Done():
		s.logger.Info("daemon context cancelled, shutting down")
	case err = <-acceptErr:
		if err != nil {
			s.logger.Error("accept loop failed", "error", err)
		}
	}

	if shutdownErr := s.Shutdown(); shutdownErr != nil && err == nil {
		err = shutdownErr
	}
	s.wg.Wait()
	s.logger.Info("daemon stopped", s.metrics.Snapshot().LogAttrs()...)
	return err
}

// acceptLoop accepts incoming client connections until the listener closes
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = true
		s.mu.Unlock()
		s.updateClientCount()

		s.logger.Debug("client connected", "clients", s.ClientCount())

		s.wg.Add(2)
		go func() {
			defer s.wg.Done()
			s.handleClient(c)
		}()
		go func() {
			defer s.wg.Done()
			s.clientWriter(c)
		}()
	}
}

// broadcastLoop distributes events to subscribed clients
func (s *Server) broadcastLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return

		case event := <-s.broadcast:
			event.SequenceID = s.sequenceCounter.Add(1)
			s.metrics.IncBroadcastsTotal()
			s.logger.Debug("broadcasting event", "type", event.Type, "board", event.Board, "actor", event.Actor, "sequence", event.SequenceID)

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    events.MessageEvent,
				Event:   &event,
			}

			// The publisher receives its own event too: its subscription is
			// what rebuilds its view after a write.
			s.mu.RLock()
			for c := range s.clients {
				if !event.Matches(c.board()) {
					continue
				}
				if !s.sendToClient(c, msg) {
					s.metrics.IncEventsDropped()
					s.logger.Warn("client send queue full, event dropped", "sequence", event.SequenceID)
				}
			}
			s.mu.RUnlock()
		}
	}
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "clients", s.ClientCount())
	}()

	decoder := json.NewDecoder(c.conn)

	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			s.logger.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		// Any message proves the client is alive
		c.mu.Lock()
		c.lastPong = time.Now()
		c.mu.Unlock()

		switch msg.Type {
		case events.MessageEvent:
			if msg.Event != nil {
				s.metrics.IncEventsReceived()
				if err := s.Broadcast(*msg.Event); err != nil {
					s.logger.Warn("event not broadcast", "error", err)
				}
			}

		case events.MessageSubscribe:
			if msg.Subscribe != nil {
				c.mu.Lock()
				c.subscription = *msg.Subscribe
				c.mu.Unlock()
				s.logger.Debug("client subscribed", "board", msg.Subscribe.Board)
			}
		}
	}
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)

	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth sends ping messages and removes stale clients
func (s *Server) monitorHealth(ctx context.Context) {
	pingTicker := time.NewTicker(s.pingInterval)
	defer pingTicker.Stop()

	pingMsg := events.Message{
		Version: events.ProtocolVersion,
		Type:    events.MessagePing,
	}

	for {
		select {
		case <-ctx.Done():
			return

		case <-pingTicker.C:
			// Two phases: ping under the server lock, drop stale clients
			// outside it
			now := time.Now()
			var stale []*client
			s.mu.RLock()
			for c := range s.clients {
				c.mu.Lock()
				silent := now.Sub(c.lastPong)
				c.mu.Unlock()

				if silent > s.staleAfter {
					stale = append(stale, c)
					continue
				}
				if !s.sendToClient(c, pingMsg) {
					s.logger.Warn("failed to send ping to client (queue full)")
				}
			}
			s.mu.RUnlock()

			for _, c := range stale {
				s.logger.Info("removing stale client")
				s.removeClient(c)
			}

			s.logger.Debug("daemon stats", s.metrics.Snapshot().LogAttrs()...)
		}
	}
}

// Broadcast queues an event for every matching client (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	if s.ctx.Err() != nil {
		return errors.New("daemon shut down")
	}
	select {
	case s.broadcast <- event:
		return nil
	default:
		s.metrics.IncEventsDropped()
		return errors.New("broadcast channel full")
	}
}

// Shutdown stops accepting clients, disconnects every client and removes
// the socket file. It is safe to call more than once.
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down daemon")
		s.cancel()

		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = fmt.Errorf("closing listener: %w", closeErr)
		}

		s.mu.Lock()
		clients := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.mu.Unlock()
		for _, c := range clients {
			s.removeClient(c)
		}

		// The listener removes its socket on close; this covers the rest
		if removeErr := os.Remove(s.socketPath); removeErr != nil && !os.IsNotExist(removeErr) {
			s.logger.Warn("failed to remove socket file", "error", removeErr)
		}
	})
	return err
}

// ClientCount returns the number of connected clients
func (s *Server) ClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

func (s *Server) updateClientCount() {
	s.metrics.SetConnectedClients(int32(s.ClientCount()))
}

// removeClient safely removes a client from the server. The send channel is
// closed under the server lock; senders hold the read lock, so none is
// mid-send when it closes.
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	c.closeOnce.Do(func() {
		close(c.send)
	})
	s.mu.Unlock()

	if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		s.logger.Debug("error closing client connection", "error", err)
	}

	s.updateClientCount()
}

// sendToClient attempts to send a message to a client (non-blocking).
// Must be called with s.mu held for reading. Returns false if the queue is full.
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	select {
	case c.send <- msg:
		s.metrics.IncEventsSent()
		return true
	default:
		return false
	}
}

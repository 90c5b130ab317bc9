package tui

import (
	"log/slog"

	"github.com/thenoetrevino/todoboard/internal/models"
)

// alertBuffer bounds alerts waiting for the update loop
const alertBuffer = 16

// Bridge carries board rebuilds and failure alerts from reconciler
// goroutines into the update loop. It implements board.Alerter and its
// BoardChanged method is a board.Listener.
type Bridge struct {
	changes chan []*models.Column
	alerts  chan string
}

// NewBridge creates an empty bridge
func NewBridge() *Bridge {
	return &Bridge{
		changes: make(chan []*models.Column, 1),
		alerts:  make(chan string, alertBuffer),
	}
}

// Alert queues a blocking alert. It never blocks the caller: when the
// update loop has fallen behind by alertBuffer alerts the new one is logged
// and dropped.
func (b *Bridge) Alert(message string) {
	select {
	case b.alerts <- message:
	default:
		slog.Warn("alert dropped, queue full", "message", message)
	}
}

// BoardChanged hands the latest view to the update loop. Only the newest
// view matters, so an unread older one is replaced.
func (b *Bridge) BoardChanged(columns []*models.Column) {
	for {
		select {
		case b.changes <- columns:
			return
		default:
		}
		select {
		case <-b.changes:
		default:
		}
	}
}

// Package ws implements the realtime message channel: one shared hub where
// every inbound message is fanned out to all connected clients, sender
// included. There is no partitioning by patient or room and no delivery
// guarantee; a peer that vanished mid-broadcast is skipped, not an error.
package ws

import (
	"sync"

	"github.com/rs/zerolog/log"
)

// textMessage is the RFC 6455 text frame opcode, shared by every websocket
// transport this hub may sit behind.
const textMessage = 1

// sendBuffer bounds each client's outbound queue; a client that cannot drain
// it loses messages rather than stalling the broadcast.
const sendBuffer = 256

// Conn abstracts the underlying websocket connection for testability.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	Close() error
}

// Client is one registered connection. Messages queued on Send are written to
// the socket by WritePump.
type Client struct {
	ID   string
	Send chan []byte
	conn Conn
}

// NewClient wraps a connection for registration with the hub.
func NewClient(id string, conn Conn) *Client {
	return &Client{
		ID:   id,
		Send: make(chan []byte, sendBuffer),
		conn: conn,
	}
}

// WritePump drains the Send channel onto the socket until the channel closes
// or a write fails, then closes the socket. Run it in its own goroutine.
func (c *Client) WritePump() {
	defer c.conn.Close()
	for data := range c.Send {
		if err := c.conn.WriteMessage(textMessage, data); err != nil {
			log.Debug().Str("client", c.ID).Err(err).Msg("ws: write failed, dropping client")
			return
		}
	}
}

// Hub owns the process-wide registry of open connections. All registry access
// goes through the mutex; handlers run on parallel goroutines.
type Hub struct {
	mu      sync.Mutex
	clients map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds a client to the registry.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
}

// Unregister removes a client and closes its Send channel. Idempotent: every
// disconnect path calls it and double removal is harmless.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.Send)
}

// Broadcast queues data for every registered client, including whoever sent
// it. A client with a full buffer is skipped so one slow reader cannot block
// the rest.
func (h *Hub) Broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.Send <- data:
		default:
		}
	}
}

// ClientCount returns the number of registered clients.
func (h *Hub) ClientCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

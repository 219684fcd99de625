package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a catalog change sent to subscribers.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is a subscriber's channel of encoded events. The SSE handler
// drains it.
type Client chan []byte

// Hub fans catalog events out to every subscribed client.
type Hub struct {
	clients map[Client]struct{}
	mu      sync.RWMutex
	buffer  int
}

// New creates a Hub whose client channels hold up to buffer events.
func New(buffer int) *Hub {
	if buffer < 1 {
		buffer = 1
	}
	return &Hub{
		clients: make(map[Client]struct{}),
		buffer:  buffer,
	}
}

// Subscribe registers and returns a new client.
func (h *Hub) Subscribe() Client {
	client := make(Client, h.buffer)

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
	return client
}

// Unsubscribe removes the client and closes its channel.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Subscribers returns the number of connected clients.
func (h *Hub) Subscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Publish sends an event to all clients. A client whose buffer is full
// misses the event rather than blocking the publisher.
func (h *Hub) Publish(event Event) {
	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients {
		select {
		case client <- messageBytes:
		default:
		}
	}
}

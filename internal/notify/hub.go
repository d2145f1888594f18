package notify

import (
	"fmt"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// OrderEvent is pushed to the buyer's and the seller's connections when an
// order is placed or changes status. Best effort; nothing is persisted.
type OrderEvent struct {
	OrderID   string `json:"order_id"`
	Status    string `json:"status"`
	Event     string `json:"event"` // order_placed, status_changed
	ProductID uint   `json:"product_id,omitempty"`
}

// Client wraps one websocket connection. All writes go through the
// buffered send channel and a single writer goroutine, so publishers from
// concurrent request goroutines never touch the connection directly.
type Client struct {
	conn *websocket.Conn
	send chan OrderEvent
}

// writePump is the connection's only writer. It drains the send channel
// until the hub closes it or the peer goes away.
func (c *Client) writePump() {
	defer c.conn.Close()
	for event := range c.send {
		if err := c.conn.WriteJSON(event); err != nil {
			return
		}
	}
}

// Hub fans order events out to live websocket connections, keyed by the
// authenticated party ("user:<id>" or "shop:<id>"). One party may hold
// several connections (multiple tabs/devices).
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

// UserKey and ShopKey build the registration keys used by both the
// websocket endpoint and the publishers.
func UserKey(id uint) string { return fmt.Sprintf("user:%d", id) }
func ShopKey(id uint) string { return fmt.Sprintf("shop:%d", id) }

// Register wraps the connection in a Client, starts its writer goroutine
// and files it under the party's key.
func (h *Hub) Register(key string, conn *websocket.Conn) *Client {
	client := &Client{conn: conn, send: make(chan OrderEvent, 8)}

	h.mu.Lock()
	if h.clients[key] == nil {
		h.clients[key] = make(map[*Client]struct{})
	}
	h.clients[key][client] = struct{}{}
	h.mu.Unlock()

	go client.writePump()
	return client
}

// Unregister removes the client and closes its send channel, which stops
// the writer goroutine. Safe to call for an already-removed client.
func (h *Hub) Unregister(key string, client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	set, ok := h.clients[key]
	if !ok {
		return
	}
	if _, ok := set[client]; !ok {
		return
	}
	delete(set, client)
	if len(set) == 0 {
		delete(h.clients, key)
	}
	close(client.send)
}

// Publish enqueues the event for every connection of every given key.
// A client whose buffer is full is dropped, so the order flow never
// blocks on a slow consumer.
func (h *Hub) Publish(event OrderEvent, keys ...string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, key := range keys {
		for client := range h.clients[key] {
			select {
			case client.send <- event:
			default:
				log.Printf("notify: dropping slow client for %s", key)
				delete(h.clients[key], client)
				if len(h.clients[key]) == 0 {
					delete(h.clients, key)
				}
				close(client.send)
			}
		}
	}
}

package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyBuilders(t *testing.T) {
	assert.Equal(t, "user:42", UserKey(42))
	assert.Equal(t, "shop:9", ShopKey(9))
}

func TestRegisterUnregisterBookkeeping(t *testing.T) {
	hub := NewHub()

	a := addIdleClient(hub, UserKey(1), 8)
	b := addIdleClient(hub, UserKey(1), 8)
	assert.Len(t, hub.clients[UserKey(1)], 2)

	hub.Unregister(UserKey(1), a)
	assert.Len(t, hub.clients[UserKey(1)], 1)

	// Removing the last connection drops the key entirely.
	hub.Unregister(UserKey(1), b)
	_, ok := hub.clients[UserKey(1)]
	assert.False(t, ok)

	// Unregistering an already-removed client is a no-op, not a double
	// close.
	hub.Unregister(UserKey(1), a)
	hub.Unregister(UserKey(2), a)
}

// addIdleClient files a client without a writer goroutine so tests can
// observe what Publish put on the send channel.
func addIdleClient(hub *Hub, key string, buffer int) *Client {
	client := &Client{send: make(chan OrderEvent, buffer)}
	if hub.clients[key] == nil {
		hub.clients[key] = make(map[*Client]struct{})
	}
	hub.clients[key][client] = struct{}{}
	return client
}

func TestPublishEnqueuesWithoutTouchingTheConnection(t *testing.T) {
	hub := NewHub()
	buyer := addIdleClient(hub, UserKey(42), 8)
	seller := addIdleClient(hub, ShopKey(9), 8)

	event := OrderEvent{OrderID: "o1", Status: "PLACED", Event: "order_placed"}
	hub.Publish(event, UserKey(42), ShopKey(9))

	require.Len(t, buyer.send, 1)
	require.Len(t, seller.send, 1)
	assert.Equal(t, event, <-buyer.send)
	assert.Equal(t, event, <-seller.send)
}

func TestPublishDropsSlowClient(t *testing.T) {
	hub := NewHub()
	slow := addIdleClient(hub, UserKey(1), 1)

	hub.Publish(OrderEvent{OrderID: "o1", Status: "PLACED"}, UserKey(1))
	// The buffer is full now; the next publish evicts the client instead
	// of blocking the order flow.
	hub.Publish(OrderEvent{OrderID: "o2", Status: "PLACED"}, UserKey(1))

	_, ok := hub.clients[UserKey(1)]
	assert.False(t, ok)

	// The channel was closed after draining the buffered event.
	<-slow.send
	_, open := <-slow.send
	assert.False(t, open)
}

func TestPublishToUnknownKeyIsNoop(t *testing.T) {
	hub := NewHub()
	hub.Publish(OrderEvent{OrderID: "o1", Status: "PLACED"}, UserKey(5), ShopKey(6))
}

package notify

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// Upgrade gates the websocket route: plain HTTP requests get 426.
func Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// ServeOrders registers the authenticated party on the hub and holds the
// connection open until the client goes away. The auth middleware has
// already placed user_id and role in locals.
func ServeOrders(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		userID, ok := conn.Locals("user_id").(uint)
		if !ok {
			conn.Close()
			return
		}

		key := UserKey(userID)
		if role, _ := conn.Locals("role").(string); role == "shop" {
			key = ShopKey(userID)
		}

		client := hub.Register(key, conn)
		defer hub.Unregister(key, client)

		// Drain client frames; the hub only pushes.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	})
}

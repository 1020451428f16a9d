package transport

import (
	"log"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// WebSocketHandler upgrades /ws connections and fans published reactions out
// to them. Viewers are read-only: anything they send is drained and
// discarded so a slow or chatty client can't block the write loop, and
// connection loss unregisters the subscriber automatically.
func WebSocketHandler(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub := NewSubscriber()
		hub.Register(sub)

		go func() {
			defer func() {
				hub.Unregister(sub)
				conn.Close()
			}()
			for msg := range sub.Send {
				if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
					return
				}
			}
		}()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				log.Printf("transport: subscriber %s disconnected: %v", sub.ID, err)
				break
			}
		}

		hub.Unregister(sub)
		conn.Close()
	})
}

// UpgradeMiddleware is registered ahead of WebSocketHandler on the same
// route to reject non-upgrade requests before they reach the handshake.
func UpgradeMiddleware(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

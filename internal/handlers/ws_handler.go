package handlers

import (
	"encoding/json"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"promcare/internal/ws"
)

// RequireWebSocketUpgrade rejects plain HTTP requests on the realtime route.
func RequireWebSocketUpgrade() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// BroadcastSocketHandler registers the connection with the hub, then reads
// until the peer goes away, fanning every JSON message out to all connected
// clients (sender included). Unregister runs on every exit path.
func BroadcastSocketHandler(hub *ws.Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		client := ws.NewClient(uuid.NewString(), conn)
		hub.Register(client)
		defer hub.Unregister(client)

		go client.WritePump()

		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				log.Debug().Str("client", client.ID).Msg("ws: client disconnected")
				return
			}
			if !json.Valid(msg) {
				continue
			}
			hub.Broadcast(msg)
		}
	})
}

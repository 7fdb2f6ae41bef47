package realtime

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// UpgradeRequired rejects plain HTTP requests on the websocket route.
func UpgradeRequired() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	}
}

// SettingsStream returns the websocket handler that pushes every
// settings update to the connected client as a JSON message.
func SettingsStream(hub *Hub) fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub := hub.Subscribe()
		defer hub.Unsubscribe(sub)

		// Drain client frames so we notice a close. Clients never send
		// payloads on this channel.
		readDone := make(chan struct{})
		go func() {
			defer close(readDone)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case settings, ok := <-sub:
				if !ok {
					return
				}
				if err := conn.WriteJSON(settings); err != nil {
					slog.Info("settings subscriber dropped", "error", err)
					return
				}
			case <-readDone:
				return
			}
		}
	})
}

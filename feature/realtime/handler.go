package realtime

import (
	"party-ledger/core/bus"
	"party-ledger/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"go.uber.org/zap"
)

// Handler upgrades clients to websocket connections and streams bus
// events to them.
type Handler struct {
	bus    *bus.Bus
	logger *zap.Logger
}

// NewHandler creates a new websocket handler.
func NewHandler(b *bus.Bus, logger *zap.Logger) *Handler {
	return &Handler{bus: b, logger: logger}
}

// RegisterRoutes registers the websocket endpoint. Clients that cannot
// set headers pass the token as a query parameter instead.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Use("/ws", h.upgradeGuard)
	app.Get("/ws", websocket.New(h.stream))
}

func (h *Handler) upgradeGuard(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	if id, ok := auth.FromContext(c); ok {
		c.Locals("username", id.Username)
	}
	return c.Next()
}

// stream forwards every bus event to the connection until the client
// goes away. The read pump exists only to notice the close.
func (h *Handler) stream(conn *websocket.Conn) {
	username, _ := conn.Locals("username").(string)
	l := h.logger.With(zap.String("username", username))
	l.Info("observer connected")

	events := h.bus.Subscribe()
	defer h.bus.Unsubscribe(events)

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case evt, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(evt); err != nil {
				l.Info("observer disconnected", zap.Error(err))
				return
			}
		case <-done:
			l.Info("observer disconnected")
			return
		}
	}
}

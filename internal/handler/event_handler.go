package handler

import (
	"notecraft-be/internal/pkg/logger"
	"notecraft-be/internal/pkg/serverutils"
	internalWS "notecraft-be/internal/websocket"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// EventHandler upgrades authenticated requests to the per-user event
// stream. Clients learn that something changed server-side; they do not
// receive the changed records.
type EventHandler struct {
	hub    *internalWS.Hub
	logger logger.ILogger
}

func NewEventHandler(hub *internalWS.Hub, log logger.ILogger) *EventHandler {
	return &EventHandler{
		hub:    hub,
		logger: log,
	}
}

func (h *EventHandler) RegisterRoutes(r fiber.Router, auth fiber.Handler) {
	g := r.Group("/events")
	g.Use(auth)
	g.Get("/ws", h.ServeWs)
}

func (h *EventHandler) ServeWs(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	userID, err := serverutils.CurrentUserId(c)
	if err != nil {
		return err
	}

	return websocket.New(func(conn *websocket.Conn) {
		h.logger.Info("EventHandler", "Starting WebSocket session", map[string]interface{}{"user_id": userID})
		internalWS.ServeWs(h.hub, conn, userID)
		h.logger.Info("EventHandler", "WebSocket session ended", map[string]interface{}{"user_id": userID})
	})(c)
}

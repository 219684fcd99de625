package handler

import (
	"io"
	"time"

	"gamecatalog/backend/internal/hub"

	"github.com/gin-gonic/gin"
)

const heartbeatInterval = 30 * time.Second

// EventsHandler streams catalog changes as server-sent events.
type EventsHandler struct {
	hub *hub.Hub
}

// NewEventsHandler creates an EventsHandler fed by h.
func NewEventsHandler(h *hub.Hub) *EventsHandler {
	return &EventsHandler{hub: h}
}

// StreamEvents godoc
// @Summary      Stream catalog changes
// @Description  Server-sent events: "ready" once connected, then one "change" event per create, update or delete.
// @Tags         games
// @Produce      text/event-stream
// @Success      200
// @Router       /games/events [get]
func (h *EventsHandler) StreamEvents(c *gin.Context) {
	client := h.hub.Subscribe()
	defer h.hub.Unsubscribe(client)

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	c.SSEvent("ready", gin.H{"subscribers": h.hub.Subscribers()})
	c.Writer.Flush()

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case msg, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent("change", string(msg))
			return true
		case t := <-heartbeat.C:
			c.SSEvent("ping", t.UTC().Format(isoMillis))
			return true
		}
	})
}

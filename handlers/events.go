package handlers

import (
	"io"

	"emviapp/services/relay"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// EventStreamHandler bridges the in-process relay to browsers over SSE.
type EventStreamHandler struct {
	Relay  *relay.Relay
	Logger *zap.Logger
}

// NewEventStreamHandler creates an EventStreamHandler.
func NewEventStreamHandler(r *relay.Relay, logger *zap.Logger) *EventStreamHandler {
	return &EventStreamHandler{Relay: r, Logger: logger}
}

// Stream handles GET /api/events/stream. Each connected client gets its own
// relay subscription, released when the client disconnects.
func (h *EventStreamHandler) Stream(c *gin.Context) {
	sub := h.Relay.Subscribe()
	defer sub.Close()

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	clientGone := c.Request.Context().Done()
	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-sub.C:
			if !ok {
				return false
			}
			c.SSEvent(event.Type, event)
			return true
		case <-clientGone:
			return false
		}
	})
}

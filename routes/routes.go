package routes

import (
	"net/http"
	"time"

	"emviapp/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle collects the handlers the router wires up.
type HandlerBundle struct {
	Booking      *handlers.BookingHandler
	Availability *handlers.AvailabilityHandler
	Webhook      *handlers.StripeWebhookHandler
	EventStream  *handlers.EventStreamHandler
}

// RegisterRoutes registers all endpoints with the assembled handler bundle.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Stripe-Signature"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	RegisterBookingRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)

	// Webhooks authenticate by signature, not bearer token.
	r.POST("/api/webhooks/stripe", hb.Webhook.Handle)

	// Realtime feed for UI refresh.
	r.GET("/api/events/stream", hb.EventStream.Stream)
}

package routes

import (
	"emviapp/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		// Conflict checks are read-only and usable pre-login (e.g. slot pickers).
		api.POST("/check", hb.Booking.CheckConflicts)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", hb.Booking.CreateBooking)
		api.GET("", hb.Booking.ListBookings)
		api.GET("/:id", hb.Booking.GetBooking)
		api.POST("/:id/accept", hb.Booking.AcceptBooking)
		api.POST("/:id/decline", hb.Booking.DeclineBooking)
		api.POST("/:id/complete", hb.Booking.CompleteBooking)
		api.POST("/:id/no-show", hb.Booking.MarkNoShow)
		api.POST("/:id/cancel", hb.Booking.CancelBooking)
	}
}

// RegisterAvailabilityRoutes registers artist schedule endpoints.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/artists/:artistID")
	{
		api.GET("/availability", hb.Availability.GetWeeklySchedule)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware())
		api.PUT("/availability", hb.Availability.SetWeeklySchedule)
		api.POST("/time-off", hb.Availability.AddTimeOff)
		api.GET("/time-off", hb.Availability.ListTimeOff)
		api.DELETE("/time-off/:id", hb.Availability.RemoveTimeOff)
	}
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	bookingRepo "emviapp/database/repository/booking"
	catalogRepo "emviapp/database/repository/catalog"
	"emviapp/models"
	"emviapp/services/booking"
	"emviapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking engine over HTTP.
type BookingHandler struct {
	Engine booking.BookingEngine
	Logger *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(engine booking.BookingEngine, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Engine: engine, Logger: logger}
}

// CreateBooking handles POST /api/bookings.
// Responds 201 with the booking (and payment intent when one was required),
// 409 with the conflict list, or an error status.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req booking.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Engine.CreateBooking(c.Request.Context(), req)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	if len(result.Conflicts) > 0 {
		c.JSON(http.StatusConflict, gin.H{"conflicts": result.Conflicts})
		return
	}

	c.JSON(http.StatusCreated, result)
}

// CheckConflicts handles POST /api/bookings/check.
func (h *BookingHandler) CheckConflicts(c *gin.Context) {
	var req booking.ConflictCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	conflicts, err := h.Engine.CheckConflicts(c.Request.Context(), req)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"conflicts": conflicts})
}

// GetBooking handles GET /api/bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	b, err := h.Engine.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// ListBookings handles GET /api/bookings?artist_id=&customer_id=&date=.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	bookings, err := h.Engine.ListBookings(c.Request.Context(),
		c.Query("artist_id"), c.Query("customer_id"), c.Query("date"))
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// Status transition handlers. The acting identity comes from the auth middleware.

func (h *BookingHandler) AcceptBooking(c *gin.Context) {
	h.transition(c, h.Engine.Accept)
}

func (h *BookingHandler) DeclineBooking(c *gin.Context) {
	h.transition(c, h.Engine.Decline)
}

func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	h.transition(c, h.Engine.Complete)
}

func (h *BookingHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.Engine.MarkNoShow)
}

func (h *BookingHandler) CancelBooking(c *gin.Context) {
	h.transition(c, h.Engine.Cancel)
}

func (h *BookingHandler) transition(c *gin.Context, fn func(ctx context.Context, id, actor string) (*models.Booking, error)) {
	actor := c.GetString("authID")
	b, err := fn(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		h.respondEngineError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// respondEngineError maps engine errors to HTTP statuses. Payment failures get
// a generic retry message; provider details stay in the logs.
func (h *BookingHandler) respondEngineError(c *gin.Context, err error) {
	var bookingErr *booking.BookingError
	var paymentErr *booking.PaymentError

	switch {
	case errors.As(err, &bookingErr):
		status := http.StatusBadRequest
		if bookingErr.Code == "serviceInactive" {
			status = http.StatusUnprocessableEntity
		}
		utils.JSONError(c, status, bookingErr.Message, bookingErr.Code)
	case errors.As(err, &paymentErr):
		h.Logger.Error("payment processing failed", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "Payment processing failed", "Please try again.")
	case errors.Is(err, bookingRepo.ErrNotFound), errors.Is(err, catalogRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, bookingRepo.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
	default:
		h.Logger.Error("booking request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "request failed", "An unexpected error occurred.")
	}
}

package handlers

import (
	"errors"
	"net/http"

	availabilityRepo "emviapp/database/repository/availability"
	"emviapp/models"
	"emviapp/services/booking"
	"emviapp/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes artist schedule management over HTTP.
type AvailabilityHandler struct {
	Svc    booking.AvailabilityService
	Logger *zap.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc booking.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Svc: svc, Logger: logger}
}

// SetWeeklySchedule handles PUT /api/artists/:artistID/availability.
func (h *AvailabilityHandler) SetWeeklySchedule(c *gin.Context) {
	var input struct {
		Windows []models.AvailabilityWindow `json:"windows"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.SetWeeklySchedule(c.Request.Context(), c.Param("artistID"), input.Windows); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": input.Windows})
}

// GetWeeklySchedule handles GET /api/artists/:artistID/availability.
func (h *AvailabilityHandler) GetWeeklySchedule(c *gin.Context) {
	windows, err := h.Svc.GetWeeklySchedule(c.Request.Context(), c.Param("artistID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"windows": windows})
}

// AddTimeOff handles POST /api/artists/:artistID/time-off.
func (h *AvailabilityHandler) AddTimeOff(c *gin.Context) {
	var period models.TimeOffPeriod
	if err := c.ShouldBindJSON(&period); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	period.ArtistID = c.Param("artistID")

	if err := h.Svc.AddTimeOff(c.Request.Context(), &period); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, period)
}

// ListTimeOff handles GET /api/artists/:artistID/time-off.
func (h *AvailabilityHandler) ListTimeOff(c *gin.Context) {
	periods, err := h.Svc.ListTimeOff(c.Request.Context(), c.Param("artistID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"time_off": periods})
}

// RemoveTimeOff handles DELETE /api/artists/:artistID/time-off/:id.
func (h *AvailabilityHandler) RemoveTimeOff(c *gin.Context) {
	if err := h.Svc.RemoveTimeOff(c.Request.Context(), c.Param("id"), c.Param("artistID")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AvailabilityHandler) respondError(c *gin.Context, err error) {
	var bookingErr *booking.BookingError
	switch {
	case errors.As(err, &bookingErr):
		utils.JSONError(c, http.StatusBadRequest, bookingErr.Message, bookingErr.Code)
	case errors.Is(err, availabilityRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		h.Logger.Error("availability request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "request failed", "An unexpected error occurred.")
	}
}

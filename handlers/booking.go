package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumibelle/models"
	"lumibelle/services/booking"
	"lumibelle/utils"
)

// BookingHandler exposes the public booking flow.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// RequestBooking handles POST /api/booking/appointments.
func (h *BookingHandler) RequestBooking(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	result, err := h.Service.RequestBooking(c.Request.Context(), req)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Availability handles GET /api/booking/availability/:date.
func (h *BookingHandler) Availability(c *gin.Context) {
	date := c.Param("date")
	day, err := h.Service.Availability(c.Request.Context(), date)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, day)
}

// CancelAppointment handles POST /api/booking/appointments/:id/cancel.
func (h *BookingHandler) CancelAppointment(c *gin.Context) {
	id := c.Param("id")
	appt, err := h.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// respondBookingError maps allocator outcomes to HTTP statuses:
// bad input 400, missing records 404, occupied slots 409, no staff 503,
// storage failures 500.
func respondBookingError(c *gin.Context, err error) {
	var slotFull *booking.SlotFullError
	var staffConflict *booking.StaffConflictError
	var storage *booking.StorageError

	switch {
	case errors.Is(err, booking.ErrInvalidInput):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, booking.ErrSlotUnavailable):
		utils.JSONError(c, http.StatusBadRequest, "slot not open for booking", err.Error())
	case errors.Is(err, booking.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", err.Error())
	case errors.As(err, &slotFull):
		c.JSON(http.StatusConflict, gin.H{
			"error":      "slot fully booked",
			"details":    slotFull.Error(),
			"totalStaff": slotFull.TotalStaff,
			"busyStaff":  slotFull.BusyStaff,
		})
	case errors.As(err, &staffConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error":     "requested staff member is busy",
			"details":   staffConflict.Error(),
			"staffId":   staffConflict.StaffID,
			"freeStaff": staffConflict.FreeStaff,
		})
	case errors.Is(err, booking.ErrNoStaffAvailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "no staff available", err.Error())
	case errors.As(err, &storage):
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", storage.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

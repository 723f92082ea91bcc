package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appointmentRepo "lumibelle/database/repository/appointment"
	"lumibelle/models"
	"lumibelle/services/booking"
	"lumibelle/utils"
)

// AppointmentLister is the subset of the ledger the admin surface uses
// directly, beyond the allocator operations.
type AppointmentLister interface {
	ListByDate(ctx context.Context, date string) ([]models.Appointment, error)
	ListByCustomerPhone(ctx context.Context, phone string) ([]models.Appointment, error)
	Delete(ctx context.Context, id string) error
}

// AppointmentHandler exposes the admin appointment back office.
type AppointmentHandler struct {
	Booking booking.BookingService
	Ledger  AppointmentLister
}

// NewAppointmentHandler constructs an AppointmentHandler.
func NewAppointmentHandler(svc booking.BookingService, ledger AppointmentLister) *AppointmentHandler {
	return &AppointmentHandler{Booking: svc, Ledger: ledger}
}

// ListByDate handles GET /api/admin/appointments?date=YYYY-MM-DD.
func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "date query parameter is required")
		return
	}
	appts, err := h.Ledger.ListByDate(c.Request.Context(), date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// ListByPhone handles GET /api/admin/appointments/by-phone/:phone.
func (h *AppointmentHandler) ListByPhone(c *gin.Context) {
	phone := c.Param("phone")
	appts, err := h.Ledger.ListByCustomerPhone(c.Request.Context(), phone)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}

// Update handles PATCH /api/admin/appointments/:id (reschedule or edit).
func (h *AppointmentHandler) Update(c *gin.Context) {
	id := c.Param("id")
	var patch models.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	appt, err := h.Booking.RescheduleOrUpdate(c.Request.Context(), id, patch)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Confirm handles POST /api/admin/appointments/:id/confirm.
func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.statusChange(c, h.Booking.Confirm)
}

// Cancel handles POST /api/admin/appointments/:id/cancel.
func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.statusChange(c, h.Booking.Cancel)
}

// Complete handles POST /api/admin/appointments/:id/complete.
func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.statusChange(c, h.Booking.Complete)
}

func (h *AppointmentHandler) statusChange(c *gin.Context, op func(context.Context, string) (*models.Appointment, error)) {
	id := c.Param("id")
	appt, err := op(c.Request.Context(), id)
	if err != nil {
		respondBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, appt)
}

// Delete handles DELETE /api/admin/appointments/:id.
func (h *AppointmentHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	err := h.Ledger.Delete(c.Request.Context(), id)
	if errors.Is(err, appointmentRepo.ErrNotFound) {
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
		return
	}
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

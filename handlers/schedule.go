package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumibelle/services/schedule"
	"lumibelle/utils"
)

// ScheduleHandler exposes the admin schedule back office.
type ScheduleHandler struct {
	Service schedule.ScheduleService
}

// NewScheduleHandler constructs a ScheduleHandler.
func NewScheduleHandler(svc schedule.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{Service: svc}
}

// Upsert handles PUT /api/admin/schedules/:date.
func (h *ScheduleHandler) Upsert(c *gin.Context) {
	date := c.Param("date")
	var input struct {
		AvailableSlots []string `json:"availableSlots"`
		IsAvailable    bool     `json:"isAvailable"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entry, err := h.Service.Upsert(c.Request.Context(), date, input.AvailableSlots, input.IsAvailable)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Get handles GET /api/admin/schedules/:date.
func (h *ScheduleHandler) Get(c *gin.Context) {
	entry, err := h.Service.Get(c.Request.Context(), c.Param("date"))
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// ListRange handles GET /api/admin/schedules?from=...&to=...
func (h *ScheduleHandler) ListRange(c *gin.Context) {
	from := c.Query("from")
	to := c.Query("to")
	if from == "" || to == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "from and to query parameters are required")
		return
	}
	entries, err := h.Service.ListRange(c.Request.Context(), from, to)
	if err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"schedules": entries})
}

// Delete handles DELETE /api/admin/schedules/:date.
func (h *ScheduleHandler) Delete(c *gin.Context) {
	date := c.Param("date")
	if err := h.Service.Delete(c.Request.Context(), date); err != nil {
		respondScheduleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": date})
}

func respondScheduleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, schedule.ErrInvalidDate), errors.Is(err, schedule.ErrInvalidSlot):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, schedule.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", err.Error())
	}
}

package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"lumibelle/models"
	"lumibelle/services/staff"
	"lumibelle/utils"
)

// StaffHandler exposes the admin roster back office.
type StaffHandler struct {
	Service staff.StaffService
}

// NewStaffHandler constructs a StaffHandler.
func NewStaffHandler(svc staff.StaffService) *StaffHandler {
	return &StaffHandler{Service: svc}
}

// Create handles POST /api/admin/staff.
func (h *StaffHandler) Create(c *gin.Context) {
	var input struct {
		Name        string   `json:"name" binding:"required"`
		Rating      float64  `json:"rating"`
		Specialties []string `json:"specialties"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	member, err := h.Service.Create(c.Request.Context(), input.Name, input.Rating, input.Specialties)
	if err != nil {
		respondStaffError(c, err)
		return
	}
	c.JSON(http.StatusCreated, member)
}

// Update handles PATCH /api/admin/staff/:id. The body is a partial patch;
// fields the admin omits keep their stored values.
func (h *StaffHandler) Update(c *gin.Context) {
	var patch models.StaffPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		respondStaffError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// SetActive handles PUT /api/admin/staff/:id/active.
func (h *StaffHandler) SetActive(c *gin.Context) {
	var input struct {
		Active *bool `json:"active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	id := c.Param("id")
	if err := h.Service.SetActive(c.Request.Context(), id, *input.Active); err != nil {
		respondStaffError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "active": *input.Active})
}

// Get handles GET /api/admin/staff/:id.
func (h *StaffHandler) Get(c *gin.Context) {
	member, err := h.Service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondStaffError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// List handles GET /api/admin/staff. ?active=true filters to the roster
// eligible for assignment.
func (h *StaffHandler) List(c *gin.Context) {
	var (
		members []models.StaffMember
		err     error
	)
	if c.Query("active") == "true" {
		members, err = h.Service.ListActive(c.Request.Context())
	} else {
		members, err = h.Service.ListAll(c.Request.Context())
	}
	if err != nil {
		respondStaffError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"staff": members})
}

func respondStaffError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, staff.ErrInvalidStaff):
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
	case errors.Is(err, staff.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "not found", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "storage failure", err.Error())
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// StaffHandler handles admin CRUD and attendance for salon staff
type StaffHandler struct {
	staff  *services.StaffService
	logger *logrus.Logger
}

// NewStaffHandler creates a new staff handler
func NewStaffHandler(staff *services.StaffService, logger *logrus.Logger) *StaffHandler {
	return &StaffHandler{staff: staff, logger: logger}
}

// AttendanceRequest records one day's attendance entry
type AttendanceRequest struct {
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
}

// List returns every staff member
// @Summary List staff
// @Tags Staff
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Staff
// @Router /admin/staff [get]
func (h *StaffHandler) List(c *gin.Context) {
	list, err := h.staff.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one staff member
func (h *StaffHandler) Get(c *gin.Context) {
	member, err := h.staff.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, member)
}

// Create creates a staff member
func (h *StaffHandler) Create(c *gin.Context) {
	var in services.StaffInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.staff.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update applies a partial update to a staff member
func (h *StaffHandler) Update(c *gin.Context) {
	var in services.StaffInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.staff.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member updated"})
}

// Delete removes a staff member
func (h *StaffHandler) Delete(c *gin.Context) {
	if err := h.staff.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Staff member deleted"})
}

// MarkAttendance sets the present/absent entry for one day, overwriting any
// earlier entry for that day.
// @Summary Mark attendance
// @Tags Staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AttendanceRequest true "Attendance entry"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Router /admin/staff/{id}/attendance [put]
func (h *StaffHandler) MarkAttendance(c *gin.Context) {
	var req AttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.staff.MarkAttendance(c.Request.Context(), c.Param("id"), req.Date, req.Status); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Attendance recorded"})
}

// Attendance returns the attendance map for one staff member
func (h *StaffHandler) Attendance(c *gin.Context) {
	entries, err := h.staff.Attendance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"attendance": entries})
}

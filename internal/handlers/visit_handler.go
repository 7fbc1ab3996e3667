package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// VisitHandler handles admin CRUD for customer visits and appointments
type VisitHandler struct {
	visits *services.VisitService
	logger *logrus.Logger
}

// NewVisitHandler creates a new visit handler
func NewVisitHandler(visits *services.VisitService, logger *logrus.Logger) *VisitHandler {
	return &VisitHandler{visits: visits, logger: logger}
}

// VisitStatusRequest moves a visit through its lifecycle
type VisitStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// List returns visits, optionally filtered by ?status=
// @Summary List visits
// @Tags Visits
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status"
// @Success 200 {array} models.Visit
// @Router /admin/visits [get]
func (h *VisitHandler) List(c *gin.Context) {
	list, err := h.visits.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Appointments returns visits still in the scheduled state
func (h *VisitHandler) Appointments(c *gin.Context) {
	list, err := h.visits.Appointments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one visit
func (h *VisitHandler) Get(c *gin.Context) {
	visit, err := h.visits.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, visit)
}

// Create books a visit
func (h *VisitHandler) Create(c *gin.Context) {
	var in services.VisitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.visits.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateStatus moves a visit to a new lifecycle state
func (h *VisitHandler) UpdateStatus(c *gin.Context) {
	var req VisitStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.visits.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit updated"})
}

// Delete removes a visit
func (h *VisitHandler) Delete(c *gin.Context) {
	if err := h.visits.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Visit deleted"})
}

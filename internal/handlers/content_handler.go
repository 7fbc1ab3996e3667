package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/internal/services"
)

// ContentHandler handles the editable marketing site sections
type ContentHandler struct {
	content *services.ContentService
	logger  *logrus.Logger
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *services.ContentService, logger *logrus.Logger) *ContentHandler {
	return &ContentHandler{content: content, logger: logger}
}

// Sections lists the section names the site knows about
func (h *ContentHandler) Sections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"sections": models.KnownSections()})
}

// Get returns one section's payload. Unsaved sections come back empty
// rather than as errors.
// @Summary Get content section
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section name"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Router /admin/content/{section} [get]
func (h *ContentHandler) Get(c *gin.Context) {
	payload, err := h.content.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Save validates and stores one section's payload. Unknown sections and
// unknown fields are rejected.
// @Summary Save content section
// @Tags Content
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param section path string true "Section name"
// @Success 200 {object} object
// @Failure 400 {object} ErrorResponse
// @Router /admin/content/{section} [put]
func (h *ContentHandler) Save(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	payload, err := h.content.SaveSection(c.Request.Context(), c.Param("section"), raw)
	if err != nil {
		respondUpdateError(c, err)
		return
	}

	h.logger.WithField("section", c.Param("section")).Info("Content section saved")
	c.JSON(http.StatusOK, payload)
}

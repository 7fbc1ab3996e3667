package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// PublicHandler serves the unauthenticated marketing site endpoints
type PublicHandler struct {
	catalog *services.CatalogService
	content *services.ContentService
	logger  *logrus.Logger
}

// NewPublicHandler creates a new public handler
func NewPublicHandler(catalog *services.CatalogService, content *services.ContentService, logger *logrus.Logger) *PublicHandler {
	return &PublicHandler{catalog: catalog, content: content, logger: logger}
}

// Services returns active services, featured first
// @Summary Public service list
// @Tags Public
// @Produce json
// @Success 200 {array} models.Service
// @Router /public/services [get]
func (h *PublicHandler) Services(c *gin.Context) {
	list, err := h.catalog.ListActiveServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Content returns one marketing section. Sections never saved come back
// empty so the site can render defaults.
func (h *PublicHandler) Content(c *gin.Context) {
	payload, err := h.content.GetSection(c.Request.Context(), c.Param("section"))
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// SEO returns schema.org JSON-LD describing the salon, built from the
// contact and hero sections.
// @Summary Structured data
// @Tags Public
// @Produce json
// @Success 200 {object} object
// @Router /public/seo [get]
func (h *PublicHandler) SEO(c *gin.Context) {
	data, err := h.content.SEOData(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, data)
}

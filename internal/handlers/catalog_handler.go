package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// CatalogHandler handles admin CRUD for salon services and products
type CatalogHandler struct {
	catalog *services.CatalogService
	logger  *logrus.Logger
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalog *services.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

// ListServices returns every service for the admin panel
// @Summary List services
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Service
// @Router /admin/services [get]
func (h *CatalogHandler) ListServices(c *gin.Context) {
	list, err := h.catalog.ListServices(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetService returns one service
func (h *CatalogHandler) GetService(c *gin.Context) {
	service, err := h.catalog.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService creates a service
// @Summary Create service
// @Tags Catalog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param service body services.ServiceInput true "Service fields"
// @Success 201 {object} map[string]string
// @Failure 400 {object} ErrorResponse
// @Router /admin/services [post]
func (h *CatalogHandler) CreateService(c *gin.Context) {
	var in services.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.catalog.CreateService(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateService applies a partial update to a service
func (h *CatalogHandler) UpdateService(c *gin.Context) {
	var in services.ServiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.UpdateService(c.Request.Context(), c.Param("id"), in); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service updated"})
}

// DeleteService removes a service. Invoices that already reference it are
// left alone.
func (h *CatalogHandler) DeleteService(c *gin.Context) {
	if err := h.catalog.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
}

// ListProducts returns every product
// @Summary List products
// @Tags Catalog
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Product
// @Router /admin/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.catalog.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// GetProduct returns one product
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.catalog.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct creates a product
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.catalog.CreateProduct(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// UpdateProduct applies a partial update to a product
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	var in services.ProductInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.catalog.UpdateProduct(c.Request.Context(), c.Param("id"), in); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated"})
}

// DeleteProduct removes a product
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.catalog.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

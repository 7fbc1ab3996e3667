package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// CustomerHandler handles admin CRUD for salon customers
type CustomerHandler struct {
	customers *services.CustomerService
	logger    *logrus.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customers *services.CustomerService, logger *logrus.Logger) *CustomerHandler {
	return &CustomerHandler{customers: customers, logger: logger}
}

// LoyaltyRequest adjusts a customer's loyalty balance by a signed delta
type LoyaltyRequest struct {
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason"`
}

// List returns every customer
// @Summary List customers
// @Tags Customers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Customer
// @Router /admin/customers [get]
func (h *CustomerHandler) List(c *gin.Context) {
	list, err := h.customers.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one customer
func (h *CustomerHandler) Get(c *gin.Context) {
	customer, err := h.customers.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// Create creates a customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	id, err := h.customers.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// Update applies a partial update to a customer
func (h *CustomerHandler) Update(c *gin.Context) {
	var in services.CustomerInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.customers.Update(c.Request.Context(), c.Param("id"), in); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer updated"})
}

// Delete removes a customer. Their visits and invoices are kept for the
// books.
func (h *CustomerHandler) Delete(c *gin.Context) {
	if err := h.customers.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted"})
}

// AdjustLoyalty adds or redeems loyalty points
// @Summary Adjust loyalty points
// @Description Apply a signed point delta. Redemptions that exceed the balance are rejected.
// @Tags Customers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body LoyaltyRequest true "Point delta"
// @Success 200 {object} models.Customer
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/customers/{id}/loyalty [post]
func (h *CustomerHandler) AdjustLoyalty(c *gin.Context) {
	var req LoyaltyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	customer, err := h.customers.AdjustLoyalty(c.Request.Context(), c.Param("id"), req.Delta, req.Reason)
	if err != nil {
		respondUpdateError(c, err)
		return
	}

	c.JSON(http.StatusOK, customer)
}

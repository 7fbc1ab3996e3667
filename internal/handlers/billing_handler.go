package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/services"
)

// BillingHandler handles invoice CRUD, payments and invoice delivery
type BillingHandler struct {
	billing *services.BillingService
	logger  *logrus.Logger
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(billing *services.BillingService, logger *logrus.Logger) *BillingHandler {
	return &BillingHandler{billing: billing, logger: logger}
}

// PaymentRequest records a payment against an invoice
type PaymentRequest struct {
	Amount float64 `json:"amount" binding:"required"`
	Mode   string  `json:"mode" binding:"required"`
}

// List returns invoices, optionally filtered by ?status=
// @Summary List invoices
// @Tags Billing
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by paid or pending"
// @Success 200 {array} models.Invoice
// @Router /admin/invoices [get]
func (h *BillingHandler) List(c *gin.Context) {
	list, err := h.billing.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Get returns one invoice
func (h *BillingHandler) Get(c *gin.Context) {
	invoice, err := h.billing.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// Create creates an invoice from its line items
// @Summary Create invoice
// @Description Create an invoice. The total is computed from the line items server-side.
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param invoice body services.InvoiceInput true "Invoice fields"
// @Success 201 {object} models.Invoice
// @Failure 400 {object} ErrorResponse
// @Router /admin/invoices [post]
func (h *BillingHandler) Create(c *gin.Context) {
	var in services.InvoiceInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	invoice, err := h.billing.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, invoice)
}

// Delete removes an invoice
func (h *BillingHandler) Delete(c *gin.Context) {
	if err := h.billing.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice deleted"})
}

// Pay records a payment against an invoice
// @Summary Record payment
// @Description Apply a payment. Amounts above the outstanding balance are rejected, including when a concurrent payment settles the invoice first.
// @Tags Billing
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body PaymentRequest true "Payment"
// @Success 200 {object} services.PaymentResult
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /admin/invoices/{id}/payments [post]
func (h *BillingHandler) Pay(c *gin.Context) {
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	result, err := h.billing.PayInvoice(c.Request.Context(), c.Param("id"), req.Amount, req.Mode)
	if err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// HTML returns the invoice rendered as a printable HTML document
func (h *BillingHandler) HTML(c *gin.Context) {
	html, err := h.billing.RenderHTML(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}

// Email queues the rendered invoice for delivery to the customer
func (h *BillingHandler) Email(c *gin.Context) {
	if err := h.billing.EmailInvoice(c.Request.Context(), c.Param("id")); err != nil {
		respondUpdateError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Invoice email queued"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

// DashboardHandler aggregates the counters shown on the admin landing page
type DashboardHandler struct {
	services  *database.ServiceRepository
	products  *database.ProductRepository
	customers *database.CustomerRepository
	staff     *database.StaffRepository
	visits    *database.VisitRepository
	invoices  *database.InvoiceRepository
	logger    *logrus.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	services *database.ServiceRepository,
	products *database.ProductRepository,
	customers *database.CustomerRepository,
	staff *database.StaffRepository,
	visits *database.VisitRepository,
	invoices *database.InvoiceRepository,
	logger *logrus.Logger,
) *DashboardHandler {
	return &DashboardHandler{
		services:  services,
		products:  products,
		customers: customers,
		staff:     staff,
		visits:    visits,
		invoices:  invoices,
		logger:    logger,
	}
}

// DashboardStats is the admin landing page summary
type DashboardStats struct {
	Services        int64   `json:"services"`
	Products        int64   `json:"products"`
	Customers       int64   `json:"customers"`
	Staff           int64   `json:"staff"`
	Appointments    int64   `json:"appointments"`
	PendingInvoices int64   `json:"pending_invoices"`
	TotalBilled     float64 `json:"total_billed"`
	TotalCollected  float64 `json:"total_collected"`
}

// Stats returns entity counts and revenue totals
// @Summary Dashboard stats
// @Tags Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} DashboardStats
// @Router /admin/dashboard/stats [get]
func (h *DashboardHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	var stats DashboardStats
	var err error

	if stats.Services, err = h.services.Count(ctx); err != nil {
		respondError(c, err)
		return
	}
	if stats.Products, err = h.products.Count(ctx); err != nil {
		respondError(c, err)
		return
	}
	if stats.Customers, err = h.customers.Count(ctx); err != nil {
		respondError(c, err)
		return
	}
	if stats.Staff, err = h.staff.Count(ctx); err != nil {
		respondError(c, err)
		return
	}
	if stats.Appointments, err = h.visits.Count(ctx, models.VisitScheduled); err != nil {
		respondError(c, err)
		return
	}
	if stats.PendingInvoices, err = h.invoices.Count(ctx, models.InvoicePending); err != nil {
		respondError(c, err)
		return
	}
	if stats.TotalBilled, stats.TotalCollected, err = h.invoices.Totals(ctx); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

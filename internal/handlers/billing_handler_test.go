package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/internal/services"
	"github.com/luminasalon/backend/pkg/mailer"
)

type stubInvoiceStore struct {
	invoice *models.Invoice
}

func (s *stubInvoiceStore) Create(_ context.Context, inv *models.Invoice) (string, error) {
	s.invoice = inv
	return "inv-1", nil
}

func (s *stubInvoiceStore) FindByID(_ context.Context, id string) (*models.Invoice, error) {
	if s.invoice == nil {
		return nil, database.ErrNotFound
	}
	return s.invoice, nil
}

func (s *stubInvoiceStore) FindAll(_ context.Context, status string) ([]*models.Invoice, error) {
	if s.invoice == nil {
		return nil, nil
	}
	return []*models.Invoice{s.invoice}, nil
}

func (s *stubInvoiceStore) Delete(_ context.Context, id string) error {
	s.invoice = nil
	return nil
}

func (s *stubInvoiceStore) ApplyPayment(_ context.Context, id string, amount float64, mode string) (*models.Invoice, error) {
	if _, err := s.invoice.ApplyPayment(amount, mode, time.Now()); err != nil {
		// Mirrors the conditional update: a filter miss reads as not found
		return nil, database.ErrNotFound
	}
	return s.invoice, nil
}

func newBillingRouter(store *stubInvoiceStore) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	svc := services.NewBillingService(store, mailer.NewDevMailer("billing@test", logger), logger)
	h := NewBillingHandler(svc, logger)

	router := gin.New()
	router.POST("/invoices/:id/payments", h.Pay)
	router.GET("/invoices/:id/html", h.HTML)
	return router
}

func postPayment(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, "/invoices/inv-1/payments", bytes.NewBufferString(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func storedInvoice(total, paid float64) *models.Invoice {
	return &models.Invoice{
		InvoiceNumber: "INV-20260829-AB12CD",
		CustomerName:  "Dilani Perera",
		Items:         []models.LineItem{{Name: "Haircut", Quantity: 1, Price: total}},
		TotalAmount:   total,
		PaidAmount:    paid,
		Status:        models.InvoicePending,
		InvoiceDate:   time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC),
	}
}

func TestPayEndpoint_SettlesInvoice(t *testing.T) {
	store := &stubInvoiceStore{invoice: storedInvoice(1000, 400)}
	router := newBillingRouter(store)

	w := postPayment(t, router, `{"amount": 600, "mode": "cash"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var result services.PaymentResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.IsPaid)
	assert.Equal(t, models.InvoicePaid, result.Status)
	assert.Equal(t, 1000.0, result.PaidAmount)
}

func TestPayEndpoint_OverpaymentConflict(t *testing.T) {
	store := &stubInvoiceStore{invoice: storedInvoice(1000, 400)}
	router := newBillingRouter(store)

	w := postPayment(t, router, `{"amount": 700, "mode": "card"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "outstanding balance")
	assert.Equal(t, 400.0, store.invoice.PaidAmount)
}

func TestPayEndpoint_RejectsMalformedBody(t *testing.T) {
	store := &stubInvoiceStore{invoice: storedInvoice(1000, 0)}
	router := newBillingRouter(store)

	w := postPayment(t, router, `{"amount": "six hundred"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, store.invoice.PaidAmount)
}

func TestInvoiceHTMLEndpoint(t *testing.T) {
	store := &stubInvoiceStore{invoice: storedInvoice(1000, 400)}
	router := newBillingRouter(store)

	req, err := http.NewRequest(http.MethodGet, "/invoices/inv-1/html", nil)
	require.NoError(t, err)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "INV-20260829-AB12CD")
}

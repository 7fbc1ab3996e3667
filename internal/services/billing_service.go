package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/luminasalon/backend/internal/billing"
	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/pkg/mailer"
)

// InvoiceStore is the document store surface used for invoices
type InvoiceStore interface {
	Create(ctx context.Context, invoice *models.Invoice) (string, error)
	FindByID(ctx context.Context, id string) (*models.Invoice, error)
	FindAll(ctx context.Context, status string) ([]*models.Invoice, error)
	Delete(ctx context.Context, id string) error
	ApplyPayment(ctx context.Context, id string, amount float64, mode string) (*models.Invoice, error)
}

// BillingService manages invoices: creation, payments, rendering and email
type BillingService struct {
	invoices InvoiceStore
	mail     mailer.Mailer
	logger   *logrus.Logger
}

// NewBillingService creates a new BillingService
func NewBillingService(invoices InvoiceStore, mail mailer.Mailer, logger *logrus.Logger) *BillingService {
	return &BillingService{invoices: invoices, mail: mail, logger: logger}
}

// InvoiceInput carries fields for invoice creation
type InvoiceInput struct {
	CustomerName  string            `json:"customer_name"`
	CustomerEmail string            `json:"customer_email"`
	CustomerPhone string            `json:"customer_phone"`
	Items         []models.LineItem `json:"items"`
}

// PaymentResult reports the outcome of a payment so the caller can tell
// the user when the invoice becomes fully settled.
type PaymentResult struct {
	IsPaid     bool    `json:"is_paid"`
	PaidAmount float64 `json:"paid_amount"`
	Status     string  `json:"status"`
}

// List returns invoices, optionally filtered by status
func (s *BillingService) List(ctx context.Context, status string) ([]*models.Invoice, error) {
	if status != "" && status != models.InvoicePaid && status != models.InvoicePending {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.invoices.FindAll(ctx, status)
}

// Get returns one invoice by id
func (s *BillingService) Get(ctx context.Context, id string) (*models.Invoice, error) {
	return s.invoices.FindByID(ctx, id)
}

// Create validates the input and creates a pending invoice. TotalAmount is
// computed from the line items server-side.
func (s *BillingService) Create(ctx context.Context, in InvoiceInput) (*models.Invoice, error) {
	now := time.Now()
	invoice := &models.Invoice{
		InvoiceNumber: newInvoiceNumber(now),
		CustomerName:  in.CustomerName,
		CustomerEmail: in.CustomerEmail,
		CustomerPhone: in.CustomerPhone,
		Items:         in.Items,
		Status:        models.InvoicePending,
		InvoiceDate:   now,
	}
	invoice.ComputeTotal()

	if err := invoice.Validate(); err != nil {
		return nil, err
	}

	id, err := s.invoices.Create(ctx, invoice)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_id": id,
		"number":     invoice.InvoiceNumber,
		"total":      invoice.TotalAmount,
	}).Info("Invoice created")
	return invoice, nil
}

// Delete removes an invoice
func (s *BillingService) Delete(ctx context.Context, id string) error {
	return s.invoices.Delete(ctx, id)
}

// PayInvoice applies a payment to an invoice. Validation happens before
// any write; the write itself is an atomic conditional update, so a
// concurrent payment that consumes the balance first turns this call into
// an overpayment error instead of a lost update.
func (s *BillingService) PayInvoice(ctx context.Context, id string, amount float64, mode string) (*PaymentResult, error) {
	if amount <= 0 {
		return nil, models.ErrInvalidPaymentAmount
	}
	if strings.TrimSpace(mode) == "" {
		return nil, fmt.Errorf("payment mode is required")
	}

	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if amount > invoice.Outstanding() {
		return nil, models.ErrOverpayment
	}

	updated, err := s.invoices.ApplyPayment(ctx, id, amount, mode)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			// The invoice existed a moment ago; a concurrent payment
			// must have consumed the outstanding balance.
			return nil, models.ErrOverpayment
		}
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"invoice_id": id,
		"amount":     amount,
		"mode":       mode,
		"status":     updated.Status,
	}).Info("Payment recorded")

	return &PaymentResult{
		IsPaid:     updated.Status == models.InvoicePaid,
		PaidAmount: updated.PaidAmount,
		Status:     updated.Status,
	}, nil
}

// RenderHTML returns the invoice's fixed HTML rendering
func (s *BillingService) RenderHTML(ctx context.Context, id string) (string, error) {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return billing.RenderHTML(invoice)
}

// EmailInvoice renders the invoice and hands it to the mail gateway
func (s *BillingService) EmailInvoice(ctx context.Context, id string) error {
	invoice, err := s.invoices.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if strings.TrimSpace(invoice.CustomerEmail) == "" {
		return fmt.Errorf("invoice has no customer email")
	}

	html, err := billing.RenderHTML(invoice)
	if err != nil {
		return err
	}

	return s.mail.Send(ctx, mailer.Message{
		To:      invoice.CustomerEmail,
		Subject: fmt.Sprintf("Your Lumina Salon invoice %s", invoice.InvoiceNumber),
		HTML:    html,
	})
}

// newInvoiceNumber builds a readable, unique invoice number
func newInvoiceNumber(now time.Time) string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:6])
	return fmt.Sprintf("INV-%s-%s", now.Format("20060102"), short)
}

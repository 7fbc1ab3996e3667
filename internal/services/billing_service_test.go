package services

import (
	"context"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
	"github.com/luminasalon/backend/pkg/mailer"
)

// fakeInvoiceStore keeps one invoice in memory and counts writes
type fakeInvoiceStore struct {
	invoice      *models.Invoice
	created      []*models.Invoice
	applyErr     error
	applyCalled  int
	createCalled int
}

func (f *fakeInvoiceStore) Create(_ context.Context, inv *models.Invoice) (string, error) {
	f.createCalled++
	f.created = append(f.created, inv)
	return "id-1", nil
}

func (f *fakeInvoiceStore) FindByID(_ context.Context, id string) (*models.Invoice, error) {
	if f.invoice == nil {
		return nil, database.ErrNotFound
	}
	return f.invoice, nil
}

func (f *fakeInvoiceStore) FindAll(_ context.Context, status string) ([]*models.Invoice, error) {
	if f.invoice == nil {
		return nil, nil
	}
	return []*models.Invoice{f.invoice}, nil
}

func (f *fakeInvoiceStore) Delete(_ context.Context, id string) error {
	f.invoice = nil
	return nil
}

func (f *fakeInvoiceStore) ApplyPayment(_ context.Context, id string, amount float64, mode string) (*models.Invoice, error) {
	f.applyCalled++
	if f.applyErr != nil {
		return nil, f.applyErr
	}
	if _, err := f.invoice.ApplyPayment(amount, mode, time.Now()); err != nil {
		return nil, err
	}
	return f.invoice, nil
}

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return logger
}

func newBillingService(store *fakeInvoiceStore) *BillingService {
	logger := testLogger()
	return NewBillingService(store, mailer.NewDevMailer("billing@test.local", logger), logger)
}

func pendingInvoice(total, paid float64) *models.Invoice {
	return &models.Invoice{
		InvoiceNumber: "INV-20260815-abc123",
		CustomerName:  "Nadia",
		Items:         []models.LineItem{{Name: "Haircut", Quantity: 1, Price: total}},
		TotalAmount:   total,
		PaidAmount:    paid,
		Status:        models.InvoicePending,
		InvoiceDate:   time.Now(),
	}
}

func TestCreateInvoice_ComputesTotalServerSide(t *testing.T) {
	store := &fakeInvoiceStore{}
	svc := newBillingService(store)

	invoice, err := svc.Create(context.Background(), InvoiceInput{
		CustomerName: "Nadia",
		Items: []models.LineItem{
			{Name: "Haircut", Quantity: 1, Price: 600},
			{Name: "Conditioning", Quantity: 2, Price: 200},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1000.0, invoice.TotalAmount)
	assert.Equal(t, models.InvoicePending, invoice.Status)
	assert.Regexp(t, `^INV-\d{8}-[0-9A-F]{6}$`, invoice.InvoiceNumber)
	assert.Equal(t, 1, store.createCalled)
}

func TestCreateInvoice_ValidationBeforeStore(t *testing.T) {
	store := &fakeInvoiceStore{}
	svc := newBillingService(store)

	_, err := svc.Create(context.Background(), InvoiceInput{CustomerName: "Nadia"})
	assert.Error(t, err)
	assert.Zero(t, store.createCalled, "invalid input must not reach the store")
}

func TestPayInvoice_Settles(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(1000, 400)}
	svc := newBillingService(store)

	result, err := svc.PayInvoice(context.Background(), "id-1", 600, "cash")
	require.NoError(t, err)

	assert.True(t, result.IsPaid)
	assert.Equal(t, 1000.0, result.PaidAmount)
	assert.Equal(t, models.InvoicePaid, result.Status)
}

func TestPayInvoice_PartialStaysPending(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(1000, 0)}
	svc := newBillingService(store)

	result, err := svc.PayInvoice(context.Background(), "id-1", 300, "card")
	require.NoError(t, err)

	assert.False(t, result.IsPaid)
	assert.Equal(t, models.InvoicePending, result.Status)
}

func TestPayInvoice_RejectsInvalidAmountWithoutStoreCall(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(1000, 0)}
	svc := newBillingService(store)

	_, err := svc.PayInvoice(context.Background(), "id-1", 0, "cash")
	assert.ErrorIs(t, err, models.ErrInvalidPaymentAmount)

	_, err = svc.PayInvoice(context.Background(), "id-1", -5, "cash")
	assert.ErrorIs(t, err, models.ErrInvalidPaymentAmount)

	assert.Zero(t, store.applyCalled)
}

func TestPayInvoice_RejectsOverpayment(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(500, 400)}
	svc := newBillingService(store)

	_, err := svc.PayInvoice(context.Background(), "id-1", 200, "cash")
	assert.ErrorIs(t, err, models.ErrOverpayment)
	assert.Zero(t, store.applyCalled)
}

func TestPayInvoice_ConcurrentSettlementReadsAsOverpayment(t *testing.T) {
	// The balance check passed, but the conditional write found no
	// matching document because another payment landed first.
	store := &fakeInvoiceStore{
		invoice:  pendingInvoice(500, 0),
		applyErr: database.ErrNotFound,
	}
	svc := newBillingService(store)

	_, err := svc.PayInvoice(context.Background(), "id-1", 100, "cash")
	assert.ErrorIs(t, err, models.ErrOverpayment)
}

func TestPayInvoice_RequiresMode(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(500, 0)}
	svc := newBillingService(store)

	_, err := svc.PayInvoice(context.Background(), "id-1", 100, "  ")
	assert.Error(t, err)
	assert.Zero(t, store.applyCalled)
}

func TestEmailInvoice_RequiresCustomerEmail(t *testing.T) {
	store := &fakeInvoiceStore{invoice: pendingInvoice(500, 0)}
	svc := newBillingService(store)

	err := svc.EmailInvoice(context.Background(), "id-1")
	assert.Error(t, err)
}

func TestEmailInvoice_SendsRenderedInvoice(t *testing.T) {
	inv := pendingInvoice(500, 0)
	inv.CustomerEmail = "nadia@example.com"
	store := &fakeInvoiceStore{invoice: inv}
	svc := newBillingService(store)

	err := svc.EmailInvoice(context.Background(), "id-1")
	assert.NoError(t, err)
}

func TestListInvoices_RejectsUnknownStatus(t *testing.T) {
	svc := newBillingService(&fakeInvoiceStore{})

	_, err := svc.List(context.Background(), "overdue")
	assert.Error(t, err)

	_, err = svc.List(context.Background(), models.InvoicePaid)
	assert.NoError(t, err)
}

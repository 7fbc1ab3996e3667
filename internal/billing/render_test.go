package billing

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luminasalon/backend/internal/models"
)

func sampleInvoice() *models.Invoice {
	return &models.Invoice{
		InvoiceNumber: "INV-20260815-a1b2c3",
		CustomerName:  "Nadia Perera",
		CustomerEmail: "nadia@example.com",
		Items: []models.LineItem{
			{Name: "Haircut & Blowdry", Quantity: 1, Price: 600},
			{Name: "Deep Conditioning", Quantity: 2, Price: 200},
		},
		TotalAmount: 1000,
		PaidAmount:  400,
		Status:      models.InvoicePending,
		InvoiceDate: time.Date(2026, 8, 15, 10, 30, 0, 0, time.UTC),
	}
}

func TestRenderHTML(t *testing.T) {
	html, err := RenderHTML(sampleInvoice())
	require.NoError(t, err)

	assert.Contains(t, html, "Lumina Salon")
	assert.Contains(t, html, "INV-20260815-a1b2c3")
	assert.Contains(t, html, "15 Aug 2026")
	assert.Contains(t, html, "Nadia Perera")
	assert.Contains(t, html, "nadia@example.com")
	assert.Contains(t, html, "Haircut &amp; Blowdry")
	assert.Contains(t, html, "Deep Conditioning")
	assert.Contains(t, html, "1000.00")
	assert.Contains(t, html, "400.00")
	assert.Contains(t, html, "600.00")
	assert.Contains(t, html, `badge pending`)
}

func TestRenderHTML_Deterministic(t *testing.T) {
	first, err := RenderHTML(sampleInvoice())
	require.NoError(t, err)

	second, err := RenderHTML(sampleInvoice())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRenderHTML_EscapesCustomerInput(t *testing.T) {
	inv := sampleInvoice()
	inv.CustomerName = `<script>alert("x")</script>`

	html, err := RenderHTML(inv)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderHTML_PaidBadge(t *testing.T) {
	inv := sampleInvoice()
	inv.PaidAmount = inv.TotalAmount
	inv.Status = models.InvoicePaid

	html, err := RenderHTML(inv)
	require.NoError(t, err)

	assert.Contains(t, html, "badge paid")
	assert.True(t, strings.Contains(html, "0.00"))
}

package billing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/luminasalon/backend/internal/models"
)

// invoiceHTML is the fixed invoice layout: header, itemized table,
// subtotal/paid/outstanding rows and a status badge. The template takes
// only pre-formatted strings so the output is byte-identical for equal
// invoice data.
const invoiceHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
body { font-family: Arial, sans-serif; color: #333; margin: 0; padding: 24px; }
.header { border-bottom: 2px solid #b76e79; padding-bottom: 12px; margin-bottom: 16px; }
.header h1 { margin: 0; color: #b76e79; }
.meta { font-size: 13px; color: #666; }
table { width: 100%; border-collapse: collapse; margin: 16px 0; }
th { text-align: left; background: #faf3f4; padding: 8px; border-bottom: 1px solid #ddd; }
td { padding: 8px; border-bottom: 1px solid #eee; }
.num { text-align: right; }
.totals td { border: none; padding: 4px 8px; }
.totals .label { text-align: right; color: #666; }
.badge { display: inline-block; padding: 4px 10px; border-radius: 4px; font-size: 12px; font-weight: bold; text-transform: uppercase; }
.badge.paid { background: #e6f6ec; color: #1a7f42; }
.badge.pending { background: #fdf0e6; color: #b05c12; }
</style>
</head>
<body>
<div class="header">
<h1>Lumina Salon</h1>
<div class="meta">Invoice {{.Number}} &middot; {{.Date}}</div>
</div>
<p>Billed to: <strong>{{.CustomerName}}</strong>{{if .CustomerEmail}}<br>{{.CustomerEmail}}{{end}}{{if .CustomerPhone}}<br>{{.CustomerPhone}}{{end}}</p>
<table>
<tr><th>Item</th><th class="num">Qty</th><th class="num">Price</th><th class="num">Amount</th></tr>
{{range .Items}}<tr><td>{{.Name}}</td><td class="num">{{.Quantity}}</td><td class="num">{{.Price}}</td><td class="num">{{.Amount}}</td></tr>
{{end}}</table>
<table class="totals">
<tr><td class="label">Subtotal</td><td class="num">{{.Subtotal}}</td></tr>
<tr><td class="label">Paid</td><td class="num">{{.Paid}}</td></tr>
<tr><td class="label">Outstanding</td><td class="num">{{.Outstanding}}</td></tr>
</table>
<p><span class="badge {{.Status}}">{{.Status}}</span></p>
</body>
</html>
`

var invoiceTmpl = template.Must(template.New("invoice").Parse(invoiceHTML))

type lineView struct {
	Name     string
	Quantity int
	Price    string
	Amount   string
}

type invoiceView struct {
	Number        string
	Date          string
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []lineView
	Subtotal      string
	Paid          string
	Outstanding   string
	Status        string
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// RenderHTML renders an invoice into the fixed HTML layout. Pure: no I/O,
// and identical invoices produce byte-identical output.
func RenderHTML(inv *models.Invoice) (string, error) {
	view := invoiceView{
		Number:        inv.InvoiceNumber,
		Date:          inv.InvoiceDate.Format("02 Jan 2006"),
		CustomerName:  inv.CustomerName,
		CustomerEmail: inv.CustomerEmail,
		CustomerPhone: inv.CustomerPhone,
		Subtotal:      amount(inv.TotalAmount),
		Paid:          amount(inv.PaidAmount),
		Outstanding:   amount(inv.Outstanding()),
		Status:        inv.Status,
	}
	for _, item := range inv.Items {
		view.Items = append(view.Items, lineView{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    amount(item.Price),
			Amount:   amount(item.Total()),
		})
	}

	var buf bytes.Buffer
	if err := invoiceTmpl.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("failed to render invoice %s: %w", inv.InvoiceNumber, err)
	}
	return buf.String(), nil
}

package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice status values
const (
	InvoicePaid    = "paid"
	InvoicePending = "pending"
)

// Payment validation errors, surfaced to the client as message strings
var (
	ErrInvalidPaymentAmount = errors.New("payment amount must be greater than zero")
	ErrOverpayment          = errors.New("payment amount exceeds outstanding balance")
)

// LineItem is a single billed line on an invoice
type LineItem struct {
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity"`
	Price    float64 `json:"price" bson:"price"`
}

// Total returns quantity x unit price for the line
func (li LineItem) Total() float64 {
	return float64(li.Quantity) * li.Price
}

// Payment records a single payment applied against an invoice
type Payment struct {
	Amount float64   `json:"amount" bson:"amount"`
	Mode   string    `json:"mode" bson:"mode"`
	At     time.Time `json:"at" bson:"at"`
}

// Invoice records amounts billed and paid for a customer visit.
// Invariants: PaidAmount <= TotalAmount, and Status is "paid" exactly
// when PaidAmount >= TotalAmount.
type Invoice struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	InvoiceNumber string             `json:"invoice_number" bson:"invoice_number"`
	CustomerName  string             `json:"customer_name" bson:"customer_name"`
	CustomerEmail string             `json:"customer_email,omitempty" bson:"customer_email,omitempty"`
	CustomerPhone string             `json:"customer_phone,omitempty" bson:"customer_phone,omitempty"`
	Items         []LineItem         `json:"items" bson:"items"`
	TotalAmount   float64            `json:"total_amount" bson:"total_amount"`
	PaidAmount    float64            `json:"paid_amount" bson:"paid_amount"`
	Payments      []Payment          `json:"payments,omitempty" bson:"payments,omitempty"`
	Status        string             `json:"status" bson:"status"`
	InvoiceDate   time.Time          `json:"invoice_date" bson:"invoice_date"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before any store write
func (inv *Invoice) Validate() error {
	if strings.TrimSpace(inv.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if len(inv.Items) == 0 {
		return fmt.Errorf("at least one line item is required")
	}
	for i, item := range inv.Items {
		if strings.TrimSpace(item.Name) == "" {
			return fmt.Errorf("item %d: name is required", i+1)
		}
		if item.Quantity <= 0 {
			return fmt.Errorf("item %d: quantity must be greater than zero", i+1)
		}
		if item.Price < 0 {
			return fmt.Errorf("item %d: price cannot be negative", i+1)
		}
	}
	return nil
}

// ComputeTotal recalculates TotalAmount from the line items
func (inv *Invoice) ComputeTotal() {
	total := 0.0
	for _, item := range inv.Items {
		total += item.Total()
	}
	inv.TotalAmount = total
}

// Outstanding returns the unpaid balance
func (inv *Invoice) Outstanding() float64 {
	return inv.TotalAmount - inv.PaidAmount
}

// ApplyPayment applies a payment to the invoice in memory: increments
// PaidAmount, appends a payment record and recomputes Status. Returns
// whether the invoice is fully settled after the payment. The invoice is
// not mutated on a validation error.
func (inv *Invoice) ApplyPayment(amount float64, mode string, at time.Time) (bool, error) {
	if amount <= 0 {
		return false, ErrInvalidPaymentAmount
	}
	if amount > inv.Outstanding() {
		return false, ErrOverpayment
	}
	inv.PaidAmount += amount
	inv.Payments = append(inv.Payments, Payment{Amount: amount, Mode: mode, At: at})
	if inv.PaidAmount >= inv.TotalAmount {
		inv.Status = InvoicePaid
	} else {
		inv.Status = InvoicePending
	}
	return inv.Status == InvoicePaid, nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/models"
)

// CustomerStore is the document store surface used for customers
type CustomerStore interface {
	Create(ctx context.Context, customer *models.Customer) (string, error)
	FindByID(ctx context.Context, id string) (*models.Customer, error)
	FindAll(ctx context.Context) ([]*models.Customer, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
	AdjustLoyaltyPoints(ctx context.Context, id string, delta int) (*models.Customer, error)
}

// CustomerService manages customers and their loyalty balances
type CustomerService struct {
	customers CustomerStore
	logger    *logrus.Logger
}

// NewCustomerService creates a new CustomerService
func NewCustomerService(customers CustomerStore, logger *logrus.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// CustomerInput carries create/update fields for a customer
type CustomerInput struct {
	Name  *string `json:"name"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
	Notes *string `json:"notes"`
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]*models.Customer, error) {
	return s.customers.FindAll(ctx)
}

// Get returns one customer by id
func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.customers.FindByID(ctx, id)
}

// Create validates the input and creates a customer document
func (s *CustomerService) Create(ctx context.Context, in CustomerInput) (string, error) {
	customer := &models.Customer{Name: strPtr(in.Name)}
	if in.Phone != nil {
		customer.Phone = *in.Phone
	}
	if in.Email != nil {
		customer.Email = *in.Email
	}
	if in.Notes != nil {
		customer.Notes = *in.Notes
	}

	if err := customer.Validate(); err != nil {
		return "", err
	}

	id, err := s.customers.Create(ctx, customer)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"customer_id": id, "name": customer.Name}).Info("Customer created")
	return id, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id string, in CustomerInput) error {
	update := bson.M{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		update["name"] = *in.Name
	}
	if in.Phone != nil {
		update["phone"] = *in.Phone
	}
	if in.Email != nil {
		update["email"] = *in.Email
	}
	if in.Notes != nil {
		update["notes"] = *in.Notes
	}
	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return s.customers.Update(ctx, id, update)
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}

// AdjustLoyalty changes a customer's loyalty balance by delta. The balance
// can never go negative; redemptions beyond the balance are rejected.
func (s *CustomerService) AdjustLoyalty(ctx context.Context, id string, delta int, reason string) (*models.Customer, error) {
	if delta == 0 {
		return nil, fmt.Errorf("points delta cannot be zero")
	}

	customer, err := s.customers.AdjustLoyaltyPoints(ctx, id, delta)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{
		"customer_id": id,
		"delta":       delta,
		"balance":     customer.LoyaltyPoints,
		"reason":      reason,
	}).Info("Loyalty points adjusted")
	return customer, nil
}

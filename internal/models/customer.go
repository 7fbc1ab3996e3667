package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Customer represents a salon customer with a loyalty point balance
type Customer struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name          string             `json:"name" bson:"name"`
	Phone         string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Email         string             `json:"email,omitempty" bson:"email,omitempty"`
	Notes         string             `json:"notes,omitempty" bson:"notes,omitempty"`
	LoyaltyPoints int                `json:"loyalty_points" bson:"loyalty_points"`
	CreatedAt     time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before any store write
func (c *Customer) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if c.LoyaltyPoints < 0 {
		return fmt.Errorf("loyalty points cannot be negative")
	}
	return nil
}

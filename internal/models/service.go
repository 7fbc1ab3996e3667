package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service represents a salon service offered to customers
type Service struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Price       string             `json:"price" bson:"price"`
	Category    string             `json:"category,omitempty" bson:"category,omitempty"`
	Rating      float64            `json:"rating" bson:"rating"`
	Featured    bool               `json:"featured" bson:"featured"`
	ImageURL    string             `json:"image_url,omitempty" bson:"image_url,omitempty"`
	IsActive    bool               `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before any store write
func (s *Service) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if strings.TrimSpace(s.Price) == "" {
		return fmt.Errorf("price is required")
	}
	// Price is a display string ("1500", "1500.00") but must still be numeric
	if _, err := strconv.ParseFloat(strings.TrimSpace(s.Price), 64); err != nil {
		return fmt.Errorf("price must be numeric")
	}
	if s.Rating < 0 || s.Rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	return nil
}

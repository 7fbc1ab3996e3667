package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visit status values. Appointments are visits still in the scheduled state.
const (
	VisitScheduled  = "scheduled"
	VisitInProgress = "in_progress"
	VisitCompleted  = "completed"
	VisitCancelled  = "cancelled"
)

// Visit represents a customer visit booked at reception
type Visit struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerID   string             `json:"customer_id,omitempty" bson:"customer_id,omitempty"`
	CustomerName string             `json:"customer_name" bson:"customer_name"`
	Services     []string           `json:"services" bson:"services"`
	Status       string             `json:"status" bson:"status"`
	ScheduledAt  time.Time          `json:"scheduled_at" bson:"scheduled_at"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before any store write
func (v *Visit) Validate() error {
	if strings.TrimSpace(v.CustomerName) == "" {
		return fmt.Errorf("customer name is required")
	}
	if len(v.Services) == 0 {
		return fmt.Errorf("at least one service is required")
	}
	if v.Status != "" && !IsValidVisitStatus(v.Status) {
		return fmt.Errorf("invalid status %q", v.Status)
	}
	return nil
}

// IsValidVisitStatus reports whether s is a known visit status
func IsValidVisitStatus(s string) bool {
	switch s {
	case VisitScheduled, VisitInProgress, VisitCompleted, VisitCancelled:
		return true
	}
	return false
}

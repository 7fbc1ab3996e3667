package models

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Attendance status values
const (
	AttendancePresent = "present"
	AttendanceAbsent  = "absent"
)

// Staff represents a salon staff member with per-day attendance records
type Staff struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name       string             `json:"name" bson:"name"`
	Role       string             `json:"role,omitempty" bson:"role,omitempty"`
	Phone      string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Attendance map[string]string  `json:"attendance" bson:"attendance"` // "2025-01-31" -> present|absent
	CreatedAt  time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at" bson:"updated_at"`
}

// Validate checks required fields before any store write
func (s *Staff) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("name is required")
	}
	return nil
}

// ValidateAttendanceEntry validates a date/status pair for an attendance update.
// Dates are stored as YYYY-MM-DD keys.
func ValidateAttendanceEntry(date, status string) error {
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return fmt.Errorf("date must be in YYYY-MM-DD format")
	}
	if status != AttendancePresent && status != AttendanceAbsent {
		return fmt.Errorf("status must be %q or %q", AttendancePresent, AttendanceAbsent)
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/models"
)

// StaffStore is the document store surface used for staff members
type StaffStore interface {
	Create(ctx context.Context, staff *models.Staff) (string, error)
	FindByID(ctx context.Context, id string) (*models.Staff, error)
	FindAll(ctx context.Context) ([]*models.Staff, error)
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
	SetAttendance(ctx context.Context, id, date, status string) error
}

// StaffService manages staff members and their attendance records
type StaffService struct {
	staff  StaffStore
	logger *logrus.Logger
}

// NewStaffService creates a new StaffService
func NewStaffService(staff StaffStore, logger *logrus.Logger) *StaffService {
	return &StaffService{staff: staff, logger: logger}
}

// StaffInput carries create/update fields for a staff member
type StaffInput struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
}

// List returns all staff members
func (s *StaffService) List(ctx context.Context) ([]*models.Staff, error) {
	return s.staff.FindAll(ctx)
}

// Get returns one staff member by id
func (s *StaffService) Get(ctx context.Context, id string) (*models.Staff, error) {
	return s.staff.FindByID(ctx, id)
}

// Create validates the input and creates a staff document
func (s *StaffService) Create(ctx context.Context, in StaffInput) (string, error) {
	staff := &models.Staff{Name: strPtr(in.Name)}
	if in.Role != nil {
		staff.Role = *in.Role
	}
	if in.Phone != nil {
		staff.Phone = *in.Phone
	}

	if err := staff.Validate(); err != nil {
		return "", err
	}

	id, err := s.staff.Create(ctx, staff)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{"staff_id": id, "name": staff.Name}).Info("Staff member created")
	return id, nil
}

// Update applies a partial update to a staff member
func (s *StaffService) Update(ctx context.Context, id string, in StaffInput) error {
	update := bson.M{}
	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return fmt.Errorf("name cannot be empty")
		}
		update["name"] = *in.Name
	}
	if in.Role != nil {
		update["role"] = *in.Role
	}
	if in.Phone != nil {
		update["phone"] = *in.Phone
	}
	if len(update) == 0 {
		return fmt.Errorf("no fields to update")
	}

	return s.staff.Update(ctx, id, update)
}

// Delete removes a staff member
func (s *StaffService) Delete(ctx context.Context, id string) error {
	return s.staff.Delete(ctx, id)
}

// MarkAttendance records a present/absent entry for one day
func (s *StaffService) MarkAttendance(ctx context.Context, id, date, status string) error {
	if err := models.ValidateAttendanceEntry(date, status); err != nil {
		return err
	}

	if err := s.staff.SetAttendance(ctx, id, date, status); err != nil {
		return err
	}

	s.logger.WithFields(logrus.Fields{
		"staff_id": id,
		"date":     date,
		"status":   status,
	}).Info("Attendance recorded")
	return nil
}

// Attendance returns a staff member's attendance map
func (s *StaffService) Attendance(ctx context.Context, id string) (map[string]string, error) {
	staff, err := s.staff.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if staff.Attendance == nil {
		return map[string]string{}, nil
	}
	return staff.Attendance, nil
}

package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/models"
)

// VisitStore is the document store surface used for visits
type VisitStore interface {
	Create(ctx context.Context, visit *models.Visit) (string, error)
	FindByID(ctx context.Context, id string) (*models.Visit, error)
	FindAll(ctx context.Context, status string) ([]*models.Visit, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Update(ctx context.Context, id string, update bson.M) error
	Delete(ctx context.Context, id string) error
}

// VisitService manages reception visits and the appointment book
type VisitService struct {
	visits VisitStore
	logger *logrus.Logger
}

// NewVisitService creates a new VisitService
func NewVisitService(visits VisitStore, logger *logrus.Logger) *VisitService {
	return &VisitService{visits: visits, logger: logger}
}

// VisitInput carries create fields for a visit
type VisitInput struct {
	CustomerID   string    `json:"customer_id"`
	CustomerName string    `json:"customer_name"`
	Services     []string  `json:"services"`
	ScheduledAt  time.Time `json:"scheduled_at"`
}

// List returns visits, optionally filtered by status
func (s *VisitService) List(ctx context.Context, status string) ([]*models.Visit, error) {
	if status != "" && !models.IsValidVisitStatus(status) {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	return s.visits.FindAll(ctx, status)
}

// Appointments returns visits still in the scheduled state
func (s *VisitService) Appointments(ctx context.Context) ([]*models.Visit, error) {
	return s.visits.FindAll(ctx, models.VisitScheduled)
}

// Get returns one visit by id
func (s *VisitService) Get(ctx context.Context, id string) (*models.Visit, error) {
	return s.visits.FindByID(ctx, id)
}

// Create validates the input and books a visit
func (s *VisitService) Create(ctx context.Context, in VisitInput) (string, error) {
	visit := &models.Visit{
		CustomerID:   in.CustomerID,
		CustomerName: in.CustomerName,
		Services:     in.Services,
		Status:       models.VisitScheduled,
		ScheduledAt:  in.ScheduledAt,
	}
	if visit.ScheduledAt.IsZero() {
		visit.ScheduledAt = time.Now()
	}

	if err := visit.Validate(); err != nil {
		return "", err
	}

	id, err := s.visits.Create(ctx, visit)
	if err != nil {
		return "", err
	}

	s.logger.WithFields(logrus.Fields{
		"visit_id": id,
		"customer": visit.CustomerName,
	}).Info("Visit booked")
	return id, nil
}

// UpdateStatus transitions a visit to a new status
func (s *VisitService) UpdateStatus(ctx context.Context, id, status string) error {
	if !models.IsValidVisitStatus(status) {
		return fmt.Errorf("invalid status %q", status)
	}
	return s.visits.UpdateStatus(ctx, id, status)
}

// Delete removes a visit
func (s *VisitService) Delete(ctx context.Context, id string) error {
	return s.visits.Delete(ctx, id)
}

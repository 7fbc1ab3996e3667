package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

type fakeVisitStore struct {
	visit         *models.Visit
	createCalled  int
	statusUpdates []string
}

func (f *fakeVisitStore) Create(_ context.Context, v *models.Visit) (string, error) {
	f.createCalled++
	f.visit = v
	return "visit-1", nil
}

func (f *fakeVisitStore) FindByID(_ context.Context, id string) (*models.Visit, error) {
	if f.visit == nil {
		return nil, database.ErrNotFound
	}
	return f.visit, nil
}

func (f *fakeVisitStore) FindAll(_ context.Context, status string) ([]*models.Visit, error) {
	if f.visit == nil {
		return nil, nil
	}
	if status != "" && f.visit.Status != status {
		return nil, nil
	}
	return []*models.Visit{f.visit}, nil
}

func (f *fakeVisitStore) UpdateStatus(_ context.Context, id, status string) error {
	f.statusUpdates = append(f.statusUpdates, status)
	f.visit.Status = status
	return nil
}

func (f *fakeVisitStore) Update(_ context.Context, id string, update bson.M) error {
	return nil
}

func (f *fakeVisitStore) Delete(_ context.Context, id string) error {
	f.visit = nil
	return nil
}

func TestCreateVisit_DefaultsToScheduledNow(t *testing.T) {
	store := &fakeVisitStore{}
	svc := NewVisitService(store, testLogger())

	before := time.Now()
	id, err := svc.Create(context.Background(), VisitInput{
		CustomerName: "Nadia",
		Services:     []string{"Haircut"},
	})
	require.NoError(t, err)

	assert.Equal(t, "visit-1", id)
	assert.Equal(t, models.VisitScheduled, store.visit.Status)
	assert.False(t, store.visit.ScheduledAt.Before(before))
}

func TestCreateVisit_RequiresServices(t *testing.T) {
	store := &fakeVisitStore{}
	svc := NewVisitService(store, testLogger())

	_, err := svc.Create(context.Background(), VisitInput{CustomerName: "Nadia"})
	assert.Error(t, err)
	assert.Zero(t, store.createCalled)
}

func TestUpdateVisitStatus(t *testing.T) {
	store := &fakeVisitStore{visit: &models.Visit{
		CustomerName: "Nadia",
		Services:     []string{"Haircut"},
		Status:       models.VisitScheduled,
	}}
	svc := NewVisitService(store, testLogger())

	require.NoError(t, svc.UpdateStatus(context.Background(), "visit-1", models.VisitCompleted))
	assert.Equal(t, models.VisitCompleted, store.visit.Status)

	assert.Error(t, svc.UpdateStatus(context.Background(), "visit-1", "no-show"))
	assert.Len(t, store.statusUpdates, 1)
}

func TestListVisits_RejectsUnknownStatus(t *testing.T) {
	svc := NewVisitService(&fakeVisitStore{}, testLogger())

	_, err := svc.List(context.Background(), "maybe")
	assert.Error(t, err)
}

func TestAppointments_OnlyScheduled(t *testing.T) {
	store := &fakeVisitStore{visit: &models.Visit{
		CustomerName: "Nadia",
		Services:     []string{"Haircut"},
		Status:       models.VisitCompleted,
	}}
	svc := NewVisitService(store, testLogger())

	list, err := svc.Appointments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

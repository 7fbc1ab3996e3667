package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/luminasalon/backend/internal/database"
	"github.com/luminasalon/backend/internal/models"
)

type fakeStaffStore struct {
	member       *models.Staff
	createCalled int
	attendance   map[string]string
}

func newFakeStaffStore(member *models.Staff) *fakeStaffStore {
	return &fakeStaffStore{member: member, attendance: map[string]string{}}
}

func (f *fakeStaffStore) Create(_ context.Context, s *models.Staff) (string, error) {
	f.createCalled++
	f.member = s
	return "staff-1", nil
}

func (f *fakeStaffStore) FindByID(_ context.Context, id string) (*models.Staff, error) {
	if f.member == nil {
		return nil, database.ErrNotFound
	}
	return f.member, nil
}

func (f *fakeStaffStore) FindAll(_ context.Context) ([]*models.Staff, error) {
	return nil, nil
}

func (f *fakeStaffStore) Update(_ context.Context, id string, update bson.M) error {
	return nil
}

func (f *fakeStaffStore) Delete(_ context.Context, id string) error {
	f.member = nil
	return nil
}

func (f *fakeStaffStore) SetAttendance(_ context.Context, id, date, status string) error {
	f.attendance[date] = status
	return nil
}

func TestCreateStaff_RequiresName(t *testing.T) {
	store := newFakeStaffStore(nil)
	svc := NewStaffService(store, testLogger())

	_, err := svc.Create(context.Background(), StaffInput{Role: strp("Stylist")})
	assert.Error(t, err)
	assert.Zero(t, store.createCalled)
}

func TestMarkAttendance(t *testing.T) {
	store := newFakeStaffStore(&models.Staff{Name: "Amara"})
	svc := NewStaffService(store, testLogger())

	err := svc.MarkAttendance(context.Background(), "staff-1", "2026-08-29", models.AttendancePresent)
	require.NoError(t, err)
	assert.Equal(t, models.AttendancePresent, store.attendance["2026-08-29"])

	// Marking the same day again overwrites the entry
	err = svc.MarkAttendance(context.Background(), "staff-1", "2026-08-29", models.AttendanceAbsent)
	require.NoError(t, err)
	assert.Equal(t, models.AttendanceAbsent, store.attendance["2026-08-29"])
	assert.Len(t, store.attendance, 1)
}

func TestMarkAttendance_RejectsBadInput(t *testing.T) {
	store := newFakeStaffStore(&models.Staff{Name: "Amara"})
	svc := NewStaffService(store, testLogger())

	assert.Error(t, svc.MarkAttendance(context.Background(), "staff-1", "29/08/2026", models.AttendancePresent))
	assert.Error(t, svc.MarkAttendance(context.Background(), "staff-1", "2026-08-29", "late"))
	assert.Empty(t, store.attendance)
}

func TestAttendance_NilMapComesBackEmpty(t *testing.T) {
	store := newFakeStaffStore(&models.Staff{Name: "Amara"})
	svc := NewStaffService(store, testLogger())

	entries, err := svc.Attendance(context.Background(), "staff-1")
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luminasalon/backend/internal/models"
)

// StaffRepository handles document store operations for staff members
type StaffRepository struct {
	collection *mongo.Collection
}

// NewStaffRepository creates a new StaffRepository
func NewStaffRepository(collection *mongo.Collection) *StaffRepository {
	return &StaffRepository{collection: collection}
}

// Create inserts a new staff member and returns its generated id
func (r *StaffRepository) Create(ctx context.Context, staff *models.Staff) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	staff.ID = primitive.NewObjectID()
	if staff.Attendance == nil {
		staff.Attendance = map[string]string{}
	}
	staff.CreatedAt = time.Now()
	staff.UpdatedAt = staff.CreatedAt

	if _, err := r.collection.InsertOne(ctx, staff); err != nil {
		return "", err
	}
	return staff.ID.Hex(), nil
}

// FindByID retrieves a staff member by id
func (r *StaffRepository) FindByID(ctx context.Context, id string) (*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var staff models.Staff
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&staff); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &staff, nil
}

// FindAll lists staff members sorted by name
func (r *StaffRepository) FindAll(ctx context.Context) ([]*models.Staff, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	staff := []*models.Staff{}
	if err := cursor.All(ctx, &staff); err != nil {
		return nil, err
	}
	return staff, nil
}

// Update applies a partial update to a staff member
func (r *StaffRepository) Update(ctx context.Context, id string, update bson.M) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update["updated_at"] = time.Now()

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a staff member
func (r *StaffRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// SetAttendance records attendance for one day using a single field
// update, so marking different days never conflicts.
func (r *StaffRepository) SetAttendance(ctx context.Context, id, date, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	update := bson.M{"$set": bson.M{
		"attendance." + date: status,
		"updated_at":         time.Now(),
	}}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID}, update)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Count returns the number of staff members
func (r *StaffRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.M{})
}

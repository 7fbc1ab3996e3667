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

// VisitRepository handles document store operations for customer visits
type VisitRepository struct {
	collection *mongo.Collection
}

// NewVisitRepository creates a new VisitRepository
func NewVisitRepository(collection *mongo.Collection) *VisitRepository {
	return &VisitRepository{collection: collection}
}

// Create inserts a new visit and returns its generated id
func (r *VisitRepository) Create(ctx context.Context, visit *models.Visit) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	visit.ID = primitive.NewObjectID()
	visit.CreatedAt = time.Now()
	visit.UpdatedAt = visit.CreatedAt

	if _, err := r.collection.InsertOne(ctx, visit); err != nil {
		return "", err
	}
	return visit.ID.Hex(), nil
}

// FindByID retrieves a visit by id
func (r *VisitRepository) FindByID(ctx context.Context, id string) (*models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var visit models.Visit
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&visit); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &visit, nil
}

// FindAll lists visits, optionally filtered by status, newest first
func (r *VisitRepository) FindAll(ctx context.Context, status string) ([]*models.Visit, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	visits := []*models.Visit{}
	if err := cursor.All(ctx, &visits); err != nil {
		return nil, err
	}
	return visits, nil
}

// UpdateStatus transitions a visit to a new status
func (r *VisitRepository) UpdateStatus(ctx context.Context, id, status string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Update applies a partial update to a visit
func (r *VisitRepository) Update(ctx context.Context, id string, update bson.M) error {
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

// Delete removes a visit
func (r *VisitRepository) Delete(ctx context.Context, id string) error {
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

// Count returns the number of visits, optionally filtered by status
func (r *VisitRepository) Count(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.collection.CountDocuments(ctx, filter)
}

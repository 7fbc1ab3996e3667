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

// ServiceRepository handles document store operations for salon services
type ServiceRepository struct {
	collection *mongo.Collection
}

// NewServiceRepository creates a new ServiceRepository
func NewServiceRepository(collection *mongo.Collection) *ServiceRepository {
	return &ServiceRepository{collection: collection}
}

// Create inserts a new service and returns its generated id
func (r *ServiceRepository) Create(ctx context.Context, service *models.Service) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	service.ID = primitive.NewObjectID()
	service.CreatedAt = time.Now()
	service.UpdatedAt = service.CreatedAt

	if _, err := r.collection.InsertOne(ctx, service); err != nil {
		return "", err
	}
	return service.ID.Hex(), nil
}

// FindByID retrieves a service by id
func (r *ServiceRepository) FindByID(ctx context.Context, id string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var service models.Service
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&service); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &service, nil
}

// FindAll lists services, newest first. When activeOnly is set, only
// active services are returned, featured ones first (public site order).
func (r *ServiceRepository) FindAll(ctx context.Context, activeOnly bool) ([]*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	sort := bson.D{{Key: "created_at", Value: -1}}
	if activeOnly {
		filter["is_active"] = true
		sort = bson.D{{Key: "featured", Value: -1}, {Key: "created_at", Value: -1}}
	}

	cursor, err := r.collection.Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	services := []*models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// Update applies a partial update to a service
func (r *ServiceRepository) Update(ctx context.Context, id string, update bson.M) error {
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

// Delete removes a service. Invoices that reference it are untouched.
func (r *ServiceRepository) Delete(ctx context.Context, id string) error {
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

// Count returns the number of services
func (r *ServiceRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.M{})
}

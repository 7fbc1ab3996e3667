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

// CustomerRepository handles document store operations for customers
type CustomerRepository struct {
	collection *mongo.Collection
}

// NewCustomerRepository creates a new CustomerRepository
func NewCustomerRepository(collection *mongo.Collection) *CustomerRepository {
	return &CustomerRepository{collection: collection}
}

// Create inserts a new customer and returns its generated id
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	customer.ID = primitive.NewObjectID()
	customer.CreatedAt = time.Now()
	customer.UpdatedAt = customer.CreatedAt

	if _, err := r.collection.InsertOne(ctx, customer); err != nil {
		return "", err
	}
	return customer.ID.Hex(), nil
}

// FindByID retrieves a customer by id
func (r *CustomerRepository) FindByID(ctx context.Context, id string) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var customer models.Customer
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&customer); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// FindAll lists customers sorted by name
func (r *CustomerRepository) FindAll(ctx context.Context) ([]*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	customers := []*models.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, err
	}
	return customers, nil
}

// Update applies a partial update to a customer
func (r *CustomerRepository) Update(ctx context.Context, id string, update bson.M) error {
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

// Delete removes a customer
func (r *CustomerRepository) Delete(ctx context.Context, id string) error {
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

// AdjustLoyaltyPoints atomically adds delta to a customer's loyalty
// balance. The filter forbids driving the balance below zero, so a lost
// update cannot overdraw points; ErrNotFound means either the customer
// does not exist or the balance is insufficient.
func (r *CustomerRepository) AdjustLoyaltyPoints(ctx context.Context, id string, delta int) (*models.Customer, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	filter := bson.M{"_id": objID}
	if delta < 0 {
		filter["loyalty_points"] = bson.M{"$gte": -delta}
	}

	update := bson.M{
		"$inc": bson.M{"loyalty_points": delta},
		"$set": bson.M{"updated_at": time.Now()},
	}

	var customer models.Customer
	err = r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&customer)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &customer, nil
}

// Count returns the number of customers
func (r *CustomerRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return r.collection.CountDocuments(ctx, bson.M{})
}

package database

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminasalon/backend/internal/models"
)

// AdminUserRepository handles document store operations for back-office accounts
type AdminUserRepository struct {
	collection *mongo.Collection
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(collection *mongo.Collection) *AdminUserRepository {
	return &AdminUserRepository{collection: collection}
}

// Create inserts a new admin account
func (r *AdminUserRepository) Create(ctx context.Context, user *models.AdminUser) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	user.ID = primitive.NewObjectID()
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if _, err := r.collection.InsertOne(ctx, user); err != nil {
		return "", err
	}
	return user.ID.Hex(), nil
}

// FindByEmail retrieves an admin account by email (case-insensitive)
func (r *AdminUserRepository) FindByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var user models.AdminUser
	filter := bson.M{"email": strings.ToLower(strings.TrimSpace(email))}
	if err := r.collection.FindOne(ctx, filter).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID retrieves an admin account by id
func (r *AdminUserRepository) FindByID(ctx context.Context, id string) (*models.AdminUser, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var user models.AdminUser
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastLogin records a successful login
func (r *AdminUserRepository) TouchLastLogin(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}

	now := time.Now()
	_, err = r.collection.UpdateOne(ctx, bson.M{"_id": objID},
		bson.M{"$set": bson.M{"last_login_at": now, "updated_at": now}})
	return err
}

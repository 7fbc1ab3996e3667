package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/luminasalon/backend/internal/models"
)

// RefreshTokenRepository handles persisted refresh tokens
type RefreshTokenRepository struct {
	collection *mongo.Collection
}

// NewRefreshTokenRepository creates a new RefreshTokenRepository
func NewRefreshTokenRepository(collection *mongo.Collection) *RefreshTokenRepository {
	return &RefreshTokenRepository{collection: collection}
}

// Create stores a refresh token hash with its device info
func (r *RefreshTokenRepository) Create(ctx context.Context, token *models.RefreshToken) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	token.ID = primitive.NewObjectID()
	token.CreatedAt = time.Now()

	_, err := r.collection.InsertOne(ctx, token)
	return err
}

// FindActiveByHash retrieves an unrevoked, unexpired token by its hash
func (r *RefreshTokenRepository) FindActiveByHash(ctx context.Context, hash string) (*models.RefreshToken, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	filter := bson.M{
		"token_hash": hash,
		"revoked":    false,
		"expires_at": bson.M{"$gt": time.Now()},
	}

	var token models.RefreshToken
	if err := r.collection.FindOne(ctx, filter).Decode(&token); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &token, nil
}

// RevokeByHash marks a token revoked. Revoking an unknown hash is not an
// error; logout is idempotent.
func (r *RefreshTokenRepository) RevokeByHash(ctx context.Context, hash string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateOne(ctx, bson.M{"token_hash": hash},
		bson.M{"$set": bson.M{"revoked": true}})
	return err
}

// RevokeAllForUser revokes every token belonging to a user
func (r *RefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.UpdateMany(ctx, bson.M{"user_id": userID},
		bson.M{"$set": bson.M{"revoked": true}})
	return err
}

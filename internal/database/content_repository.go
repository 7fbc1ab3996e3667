package database

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/luminasalon/backend/internal/models"
)

// ContentRepository handles document store operations for public site
// content sections. One document per section, keyed by section name;
// saves are upserts (last write wins).
type ContentRepository struct {
	collection *mongo.Collection
}

// NewContentRepository creates a new ContentRepository
func NewContentRepository(collection *mongo.Collection) *ContentRepository {
	return &ContentRepository{collection: collection}
}

// Get retrieves a content section document by section name
func (r *ContentRepository) Get(ctx context.Context, section string) (*models.ContentDocument, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var doc models.ContentDocument
	if err := r.collection.FindOne(ctx, bson.M{"section": section}).Decode(&doc); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &doc, nil
}

// Upsert stores a typed section payload under its section name
func (r *ContentRepository) Upsert(ctx context.Context, payload models.SectionPayload) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	data, err := bson.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s payload: %w", payload.SectionName(), err)
	}

	update := bson.M{"$set": bson.M{
		"section":    payload.SectionName(),
		"data":       bson.Raw(data),
		"updated_at": time.Now(),
	}}

	_, err = r.collection.UpdateOne(ctx, bson.M{"section": payload.SectionName()},
		update, options.Update().SetUpsert(true))
	return err
}

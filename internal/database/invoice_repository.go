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

// InvoiceRepository handles document store operations for invoices
type InvoiceRepository struct {
	collection *mongo.Collection
}

// NewInvoiceRepository creates a new InvoiceRepository
func NewInvoiceRepository(collection *mongo.Collection) *InvoiceRepository {
	return &InvoiceRepository{collection: collection}
}

// Create inserts a new invoice and returns its generated id
func (r *InvoiceRepository) Create(ctx context.Context, invoice *models.Invoice) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	invoice.ID = primitive.NewObjectID()
	invoice.CreatedAt = time.Now()
	invoice.UpdatedAt = invoice.CreatedAt

	if _, err := r.collection.InsertOne(ctx, invoice); err != nil {
		return "", err
	}
	return invoice.ID.Hex(), nil
}

// FindByID retrieves an invoice by id
func (r *InvoiceRepository) FindByID(ctx context.Context, id string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	var invoice models.Invoice
	if err := r.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&invoice); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// FindAll lists invoices, optionally filtered by status, newest first
func (r *InvoiceRepository) FindAll(ctx context.Context, status string) ([]*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	cursor, err := r.collection.Find(ctx, filter,
		options.Find().SetSort(bson.D{{Key: "invoice_date", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	invoices := []*models.Invoice{}
	if err := cursor.All(ctx, &invoices); err != nil {
		return nil, err
	}
	return invoices, nil
}

// Delete removes an invoice
func (r *InvoiceRepository) Delete(ctx context.Context, id string) error {
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

// ApplyPayment applies a payment atomically on the server. The filter only
// matches while the outstanding balance covers the amount, and the pipeline
// increments paid_amount, appends the payment record and recomputes status
// in the same operation, so two concurrent payments can never lose an
// update or overdraw the invoice. ErrNotFound means the invoice is missing
// or the balance no longer covers the amount.
func (r *InvoiceRepository) ApplyPayment(ctx context.Context, id string, amount float64, mode string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}

	now := time.Now()
	filter := bson.M{
		"_id": objID,
		"$expr": bson.M{"$gte": bson.A{
			bson.M{"$subtract": bson.A{"$total_amount", "$paid_amount"}},
			amount,
		}},
	}

	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"paid_amount": bson.M{"$add": bson.A{"$paid_amount", amount}},
			"payments": bson.M{"$concatArrays": bson.A{
				bson.M{"$ifNull": bson.A{"$payments", bson.A{}}},
				bson.A{bson.M{"amount": amount, "mode": mode, "at": now}},
			}},
			"updated_at": now,
		}}},
		{{Key: "$set", Value: bson.M{
			"status": bson.M{"$cond": bson.A{
				bson.M{"$gte": bson.A{"$paid_amount", "$total_amount"}},
				models.InvoicePaid,
				models.InvoicePending,
			}},
		}}},
	}

	var invoice models.Invoice
	err = r.collection.FindOneAndUpdate(ctx, filter, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&invoice)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &invoice, nil
}

// Count returns the number of invoices, optionally filtered by status
func (r *InvoiceRepository) Count(ctx context.Context, status string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}
	return r.collection.CountDocuments(ctx, filter)
}

// Totals sums billed and collected amounts across all invoices
func (r *InvoiceRepository) Totals(ctx context.Context) (billed, collected float64, err error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":       nil,
			"billed":    bson.M{"$sum": "$total_amount"},
			"collected": bson.M{"$sum": "$paid_amount"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, err
	}
	defer cursor.Close(ctx)

	var results []struct {
		Billed    float64 `bson:"billed"`
		Collected float64 `bson:"collected"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, 0, err
	}
	if len(results) == 0 {
		return 0, 0, nil
	}
	return results[0].Billed, results[0].Collected, nil
}

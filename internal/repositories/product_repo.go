package repositories

import (
	"context"

	"pastelpay/internal/identifier"
	"pastelpay/internal/models"
)

// ProductRepository defines the interface for product document access. It
// owns query construction only; validation and error policy live in the
// service layer.
type ProductRepository interface {
	// Find returns stored documents, optionally filtered by category
	// equality and capped at limit. A nil limit returns all matches, in
	// store-native order.
	Find(ctx context.Context, category string, limit *int64) ([]models.Document, error)
	// FindByID returns the stored document, or nil when no record has the
	// given id.
	FindByID(ctx context.Context, id identifier.ID) (models.Document, error)
	// InsertOne inserts a document and returns the id the store assigned.
	InsertOne(ctx context.Context, doc models.Document) (identifier.ID, error)
	// InsertMany inserts documents in order and returns the assigned ids.
	InsertMany(ctx context.Context, docs []models.Document) ([]identifier.ID, error)
	CountAll(ctx context.Context) (int64, error)
}

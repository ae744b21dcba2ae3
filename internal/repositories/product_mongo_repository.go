package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"pastelpay/internal/identifier"
	"pastelpay/internal/models"
)

const productCollection = "product"

// MongoProductRepository is a MongoDB implementation of ProductRepository.
type MongoProductRepository struct {
	coll *mongo.Collection
}

// NewMongoProductRepository creates a new instance of MongoProductRepository.
func NewMongoProductRepository(db *mongo.Database) *MongoProductRepository {
	return &MongoProductRepository{
		coll: db.Collection(productCollection),
	}
}

// Find retrieves product documents matching the category filter, capped at
// limit when one is given.
func (r *MongoProductRepository) Find(ctx context.Context, category string, limit *int64) ([]models.Document, error) {
	if limit != nil && *limit == 0 {
		// The store treats a zero limit as "no limit"; an explicit zero
		// cap means no results.
		return []models.Document{}, nil
	}

	filter := bson.M{}
	if category != "" {
		filter["category"] = category
	}
	opts := options.Find()
	if limit != nil {
		opts.SetLimit(*limit)
	}

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	defer cur.Close(ctx)

	docs := []models.Document{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}
	return docs, nil
}

// FindByID retrieves a single product document by its id. A missing record
// is returned as a nil document, not an error.
func (r *MongoProductRepository) FindByID(ctx context.Context, id identifier.ID) (models.Document, error) {
	var doc models.Document
	err := r.coll.FindOne(ctx, bson.M{"_id": id.ObjectID()}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find product %s: %w", id.Hex(), err)
	}
	return doc, nil
}

// InsertOne inserts a product document and returns the store-assigned id.
func (r *MongoProductRepository) InsertOne(ctx context.Context, doc models.Document) (identifier.ID, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return identifier.ID{}, fmt.Errorf("failed to insert product: %w", err)
	}
	id, ok := identifier.FromValue(res.InsertedID)
	if !ok {
		return identifier.ID{}, fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return id, nil
}

// InsertMany inserts product documents in order. Atomicity of the batch is
// the store's; a failed ordered insert surfaces as an error here.
func (r *MongoProductRepository) InsertMany(ctx context.Context, docs []models.Document) ([]identifier.ID, error) {
	payload := make([]interface{}, len(docs))
	for i, doc := range docs {
		payload[i] = doc
	}

	res, err := r.coll.InsertMany(ctx, payload)
	if err != nil {
		return nil, fmt.Errorf("failed to insert products: %w", err)
	}
	ids := make([]identifier.ID, 0, len(res.InsertedIDs))
	for _, v := range res.InsertedIDs {
		id, ok := identifier.FromValue(v)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", v)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// CountAll returns the number of product documents in the collection.
func (r *MongoProductRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

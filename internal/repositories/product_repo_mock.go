package repositories

import (
	"context"
	"sync"

	"pastelpay/internal/identifier"
	"pastelpay/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
// It keeps insertion order, like the real store's natural order.
type MockProductRepository struct {
	docs  map[identifier.ID]models.Document
	order []identifier.ID
	mu    sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		docs: make(map[identifier.ID]models.Document),
	}
}

// Find returns documents in insertion order, honoring the category filter
// and the limit cap.
func (r *MockProductRepository) Find(ctx context.Context, category string, limit *int64) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Document, 0, len(r.order))
	for _, id := range r.order {
		if limit != nil && int64(len(out)) >= *limit {
			break
		}
		doc := r.docs[id]
		if category != "" && doc["category"] != category {
			continue
		}
		out = append(out, doc)
	}
	return out, nil
}

// FindByID returns the document with the given id, or nil when absent.
func (r *MockProductRepository) FindByID(ctx context.Context, id identifier.ID) (models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

// InsertOne adds a new document and returns its assigned id.
func (r *MockProductRepository) InsertOne(ctx context.Context, doc models.Document) (identifier.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.insert(doc), nil
}

// InsertMany adds documents in order and returns their assigned ids.
func (r *MockProductRepository) InsertMany(ctx context.Context, docs []models.Document) ([]identifier.ID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]identifier.ID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, r.insert(doc))
	}
	return ids, nil
}

// CountAll returns the number of stored documents.
func (r *MockProductRepository) CountAll(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.docs)), nil
}

// insert assigns an id and stores a copy with "_id" set, the way the real
// store does. Callers must hold mu.
func (r *MockProductRepository) insert(doc models.Document) identifier.ID {
	id := identifier.New()
	stored := make(models.Document, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = id
	r.docs[id] = stored
	r.order = append(r.order, id)
	return id
}

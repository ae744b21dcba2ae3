package services

import (
	"context"
	"fmt"
	"log"

	"pastelpay/internal/identifier"
	"pastelpay/internal/models"
	"pastelpay/internal/repositories"
)

// EventPublisher publishes catalog events to the message broker.
type EventPublisher interface {
	PublishProductEvent(kind string, payload map[string]interface{}) error
}

// SeedResult reports the outcome of a seed call.
type SeedResult struct {
	Inserted int    `json:"inserted"`
	Message  string `json:"message,omitempty"`
}

// CatalogService handles business logic related to the product catalog.
type CatalogService struct {
	repo   repositories.ProductRepository
	events EventPublisher
}

// NewCatalogService creates a new CatalogService. A nil repo marks the store
// as unconfigured: every operation then fails with ErrStoreUnavailable,
// mirroring a deployment started without a database URL. A nil events
// publisher disables event publishing.
func NewCatalogService(repo repositories.ProductRepository, events EventPublisher) *CatalogService {
	return &CatalogService{
		repo:   repo,
		events: events,
	}
}

// ListProducts retrieves products, optionally filtered by category equality
// and capped at limit. A nil limit returns all matches.
func (s *CatalogService) ListProducts(ctx context.Context, category string, limit *int64) ([]models.ProductOut, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	docs, err := s.repo.Find(ctx, category, limit)
	if err != nil {
		return nil, err
	}

	out := make([]models.ProductOut, 0, len(docs))
	for _, doc := range docs {
		out = append(out, models.FromDocument(doc))
	}
	return out, nil
}

// GetProduct retrieves a single product by its external string id. A
// malformed id fails with ErrInvalidProductID, a well-formed id with no
// record fails with ErrProductNotFound.
func (s *CatalogService) GetProduct(ctx context.Context, id string) (*models.ProductOut, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	decoded, err := identifier.Decode(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidProductID, id)
	}

	doc, err := s.repo.FindByID(ctx, decoded)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return nil, ErrProductNotFound
	}

	out := models.FromDocument(doc)
	return &out, nil
}

// CreateProduct validates and persists a new product, returning the assigned
// id in its external string form.
func (s *CatalogService) CreateProduct(ctx context.Context, payload models.ProductCreate) (string, error) {
	if s.repo == nil {
		return "", ErrStoreUnavailable
	}

	product, err := models.FromCreateRequest(payload)
	if err != nil {
		return "", err
	}

	id, err := s.repo.InsertOne(ctx, product.ToDocument())
	if err != nil {
		return "", err
	}

	s.publish("product.created", map[string]interface{}{
		"id":    id.Hex(),
		"title": product.Title,
	})
	return id.Hex(), nil
}

// SeedProducts inserts the demo dataset when the catalog is empty and
// reports how many records went in. The count-then-insert sequence is not
// guarded against concurrent seed calls: two racing calls on an empty
// catalog can both insert. Accepted for a one-time bootstrap convenience.
func (s *CatalogService) SeedProducts(ctx context.Context) (*SeedResult, error) {
	if s.repo == nil {
		return nil, ErrStoreUnavailable
	}

	count, err := s.repo.CountAll(ctx)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return &SeedResult{Inserted: 0, Message: "Products already exist"}, nil
	}

	docs := make([]models.Document, 0, len(demoProducts))
	for _, p := range demoProducts {
		docs = append(docs, p.ToDocument())
	}
	ids, err := s.repo.InsertMany(ctx, docs)
	if err != nil {
		return nil, err
	}

	s.publish("catalog.seeded", map[string]interface{}{
		"inserted": len(ids),
	})
	return &SeedResult{Inserted: len(ids)}, nil
}

// publish sends a catalog event on a best-effort basis; a broker failure
// never fails the API call that triggered it.
func (s *CatalogService) publish(kind string, payload map[string]interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.PublishProductEvent(kind, payload); err != nil {
		log.Printf("Failed to publish %s event: %v", kind, err)
	}
}

// demoProducts is the fixed dataset SeedProducts inserts.
var demoProducts = []models.Product{
	{
		Title:       "Pastel Visa Card",
		Description: "Minimalist fintech card with soft-touch finish",
		Price:       29.99,
		Category:    "Cards",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.8,
	},
	{
		Title:       "Digital Wallet Subscription",
		Description: "Secure multi-currency wallet with instant transfers",
		Price:       9.99,
		Category:    "Services",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1612178991541-baf93d77a9a0?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.7,
	},
	{
		Title:       "Smart NFC Tag",
		Description: "Tap-to-pay accessory for seamless checkout",
		Price:       14.5,
		Category:    "Accessories",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1518770660439-4636190af475?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.4,
	},
	{
		Title:       "Premium Card Holder",
		Description: "Matte silicone holder in pastel tones",
		Price:       19.0,
		Category:    "Accessories",
		InStock:     true,
		ImageURL:    "https://images.unsplash.com/photo-1537039557101-0e0f4e3d0f51?q=80&w=1200&auto=format&fit=crop",
		Rating:      4.6,
	},
}

package models

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"pastelpay/internal/identifier"
)

// Document is the stored representation of a product, as the document store
// persists it. The id lives under the "_id" key once the document has been
// read back from the store.
type Document map[string]any

// ProductCreate is the payload for creating a product. Optional fields are
// pointers so that an absent field can be told apart from its zero value.
type ProductCreate struct {
	Title       string   `json:"title" validate:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" validate:"required,gte=0"`
	Category    string   `json:"category" validate:"required"`
	InStock     *bool    `json:"in_stock"`
	ImageURL    string   `json:"image_url"`
	Rating      *float64 `json:"rating" validate:"omitempty,gte=0,lte=5"`
}

// Product is the canonical in-memory representation of a product after
// defaulting. It carries no id; the store assigns one at insert time.
type Product struct {
	Title       string
	Description string
	Price       float64
	Category    string
	InStock     bool
	ImageURL    string
	Rating      float64
}

// ProductOut is the API-facing serialization of a product.
type ProductOut struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description *string  `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	InStock     bool     `json:"in_stock"`
	ImageURL    *string  `json:"image_url,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
}

// ValidationError reports the create-payload fields that violated their
// constraints.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed: " + strings.Join(fields, ", ")
}

var validate = validator.New()

// FromCreateRequest validates a create payload and applies the field
// defaults: in_stock true and rating 4.5 when absent. Constraint violations
// come back as a *ValidationError listing the offending fields.
func FromCreateRequest(in ProductCreate) (Product, error) {
	if err := validate.Struct(in); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return Product{}, err
		}
		fields := make(map[string]string, len(validationErrors))
		for _, e := range validationErrors {
			fields[e.Field()] = fmt.Sprintf("Field '%s' failed on the '%s' rule", e.Field(), e.Tag())
		}
		return Product{}, &ValidationError{Fields: fields}
	}

	product := Product{
		Title:       in.Title,
		Description: in.Description,
		Price:       *in.Price,
		Category:    in.Category,
		InStock:     true,
		ImageURL:    in.ImageURL,
		Rating:      4.5,
	}
	if in.InStock != nil {
		product.InStock = *in.InStock
	}
	if in.Rating != nil {
		product.Rating = *in.Rating
	}
	return product, nil
}

// ToDocument produces the persistence representation, field for field and
// without an id.
func (p Product) ToDocument() Document {
	return Document{
		"title":       p.Title,
		"description": p.Description,
		"price":       p.Price,
		"category":    p.Category,
		"in_stock":    p.InStock,
		"image_url":   p.ImageURL,
		"rating":      p.Rating,
	}
}

// FromDocument maps a stored document onto its API shape. The mapping never
// fails: fields the document lacks fall back to display defaults (price 0.0,
// in_stock true, rating absent) and nothing is re-validated on the read path.
func FromDocument(doc Document) ProductOut {
	out := ProductOut{
		Price:   0.0,
		InStock: true,
	}
	if id, ok := identifier.FromValue(doc["_id"]); ok {
		out.ID = id.Hex()
	}
	out.Title, _ = doc["title"].(string)
	out.Category, _ = doc["category"].(string)
	if s, ok := doc["description"].(string); ok {
		out.Description = &s
	}
	if s, ok := doc["image_url"].(string); ok {
		out.ImageURL = &s
	}
	if n, ok := asFloat(doc["price"]); ok {
		out.Price = n
	}
	if b, ok := doc["in_stock"].(bool); ok {
		out.InStock = b
	}
	if v, ok := doc["rating"]; ok && v != nil {
		if n, ok := asFloat(v); ok {
			out.Rating = &n
		}
	}
	return out
}

// asFloat accepts the numeric types the store hands back for a decimal field.
func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

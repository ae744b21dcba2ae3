package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pastelpay/internal/identifier"
	"pastelpay/internal/models"
)

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestFromCreateRequestDefaults(t *testing.T) {
	product, err := models.FromCreateRequest(models.ProductCreate{
		Title:    "Premium Card Holder",
		Price:    floatPtr(19.0),
		Category: "Accessories",
	})

	assert.NoError(t, err)
	assert.True(t, product.InStock, "in_stock should default to true")
	assert.Equal(t, 4.5, product.Rating, "rating should default to 4.5")
	assert.Equal(t, 19.0, product.Price)
	assert.Equal(t, "Premium Card Holder", product.Title)
}

func TestFromCreateRequestExplicitValues(t *testing.T) {
	product, err := models.FromCreateRequest(models.ProductCreate{
		Title:       "Smart NFC Tag",
		Description: "Tap-to-pay accessory",
		Price:       floatPtr(14.5),
		Category:    "Accessories",
		InStock:     boolPtr(false),
		ImageURL:    "https://example.com/tag.jpg",
		Rating:      floatPtr(4.4),
	})

	assert.NoError(t, err)
	assert.False(t, product.InStock)
	assert.Equal(t, 4.4, product.Rating)
	assert.Equal(t, "https://example.com/tag.jpg", product.ImageURL)
}

func TestFromCreateRequestZeroPrice(t *testing.T) {
	// Zero is a valid price; only negative values are rejected.
	product, err := models.FromCreateRequest(models.ProductCreate{
		Title:    "Freebie",
		Price:    floatPtr(0),
		Category: "Services",
	})

	assert.NoError(t, err)
	assert.Equal(t, 0.0, product.Price)
}

func TestFromCreateRequestNegativePrice(t *testing.T) {
	_, err := models.FromCreateRequest(models.ProductCreate{
		Title:    "Pastel Visa Card",
		Price:    floatPtr(-1),
		Category: "Cards",
	})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Price")
}

func TestFromCreateRequestRatingOutOfRange(t *testing.T) {
	_, err := models.FromCreateRequest(models.ProductCreate{
		Title:    "Pastel Visa Card",
		Price:    floatPtr(29.99),
		Category: "Cards",
		Rating:   floatPtr(5.1),
	})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Rating")

	_, err = models.FromCreateRequest(models.ProductCreate{
		Title:    "Pastel Visa Card",
		Price:    floatPtr(29.99),
		Category: "Cards",
		Rating:   floatPtr(-0.1),
	})
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Rating")
}

func TestFromCreateRequestMissingRequiredFields(t *testing.T) {
	_, err := models.FromCreateRequest(models.ProductCreate{})

	var validationErr *models.ValidationError
	assert.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Fields, "Title")
	assert.Contains(t, validationErr.Fields, "Price")
	assert.Contains(t, validationErr.Fields, "Category")
}

func TestToDocument(t *testing.T) {
	product := models.Product{
		Title:       "Digital Wallet Subscription",
		Description: "Secure multi-currency wallet",
		Price:       9.99,
		Category:    "Services",
		InStock:     true,
		ImageURL:    "https://example.com/wallet.jpg",
		Rating:      4.7,
	}

	doc := product.ToDocument()
	assert.Equal(t, "Digital Wallet Subscription", doc["title"])
	assert.Equal(t, 9.99, doc["price"])
	assert.Equal(t, "Services", doc["category"])
	assert.Equal(t, true, doc["in_stock"])
	assert.Equal(t, 4.7, doc["rating"])
	assert.NotContains(t, doc, "_id", "the store assigns the id, not the record")
}

func TestFromDocumentFull(t *testing.T) {
	id := identifier.New()
	out := models.FromDocument(models.Document{
		"_id":         id,
		"title":       "Pastel Visa Card",
		"description": "Minimalist fintech card",
		"price":       29.99,
		"category":    "Cards",
		"in_stock":    false,
		"image_url":   "https://example.com/card.jpg",
		"rating":      4.8,
	})

	assert.Equal(t, id.Hex(), out.ID)
	assert.Equal(t, "Pastel Visa Card", out.Title)
	assert.NotNil(t, out.Description)
	assert.Equal(t, "Minimalist fintech card", *out.Description)
	assert.Equal(t, 29.99, out.Price)
	assert.Equal(t, "Cards", out.Category)
	assert.False(t, out.InStock)
	assert.NotNil(t, out.Rating)
	assert.Equal(t, 4.8, *out.Rating)
}

func TestFromDocumentDefaults(t *testing.T) {
	// A near-empty stored document maps to display defaults rather than
	// failing: price 0.0, in_stock true, rating absent.
	out := models.FromDocument(models.Document{"_id": identifier.New()})

	assert.Equal(t, 0.0, out.Price)
	assert.True(t, out.InStock)
	assert.Nil(t, out.Rating)
	assert.Nil(t, out.Description)
	assert.Nil(t, out.ImageURL)
	assert.Equal(t, "", out.Title)
	assert.Equal(t, "", out.Category)
}

func TestFromDocumentMissingRatingStaysAbsent(t *testing.T) {
	out := models.FromDocument(models.Document{
		"title": "Smart NFC Tag",
		"price": 14.5,
	})
	assert.Nil(t, out.Rating, "a missing rating must not be defaulted on read")

	out = models.FromDocument(models.Document{
		"title":  "Smart NFC Tag",
		"rating": nil,
	})
	assert.Nil(t, out.Rating, "a null rating must not be defaulted on read")
}

func TestFromDocumentNumericTypes(t *testing.T) {
	// The store hands integers back for whole-number decimals.
	out := models.FromDocument(models.Document{
		"price":  int32(19),
		"rating": int64(4),
	})
	assert.Equal(t, 19.0, out.Price)
	assert.NotNil(t, out.Rating)
	assert.Equal(t, 4.0, *out.Rating)
}

func TestFromDocumentMalformedFields(t *testing.T) {
	// Read paths never fail; unusable values fall back to defaults.
	out := models.FromDocument(models.Document{
		"title":    42,
		"price":    "not-a-number",
		"in_stock": "yes",
		"rating":   "high",
	})

	assert.Equal(t, "", out.Title)
	assert.Equal(t, 0.0, out.Price)
	assert.True(t, out.InStock)
	assert.Nil(t, out.Rating)
}

func TestFromDocumentDoesNotRevalidate(t *testing.T) {
	// Validation runs on write only; a bad stored value passes through.
	out := models.FromDocument(models.Document{"price": -3.5})
	assert.Equal(t, -3.5, out.Price)
}

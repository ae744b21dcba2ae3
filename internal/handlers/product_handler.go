package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"pastelpay/internal/models"
	"pastelpay/internal/services"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalog *services.CatalogService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalog *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	products := router.Group("/products")
	products.Get("/", h.HandleList)
	products.Post("/", h.HandleCreate)
	products.Post("/seed", h.HandleSeed)
	products.Get("/:id", h.HandleGet)
}

// HandleList returns products, filtered by the category and limit query
// parameters when present.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	var limit *int64
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid limit parameter",
			})
		}
		limit = &n
	}

	products, err := h.catalog.ListProducts(c.Context(), c.Query("category"), limit)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(products)
}

// HandleGet returns a single product by id.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	product, err := h.catalog.GetProduct(c.Context(), c.Params("id"))
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(product)
}

// HandleCreate creates a product and returns its new id.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var payload models.ProductCreate
	if err := c.BodyParser(&payload); err != nil {
		log.Printf("Error parsing create product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	id, err := h.catalog.CreateProduct(c.Context(), payload)
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(id)
}

// HandleSeed populates the demo dataset.
func (h *ProductHandler) HandleSeed(c *fiber.Ctx) error {
	result, err := h.catalog.SeedProducts(c.Context())
	if err != nil {
		return h.handleServiceError(c, err)
	}
	return c.JSON(result)
}

// handleServiceError maps domain errors onto HTTP statuses. Client-input
// faults are not logged here; the request logger already records them.
func (h *ProductHandler) handleServiceError(c *fiber.Ctx, err error) error {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, services.ErrInvalidProductID):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid product id",
		})
	case errors.Is(err, services.ErrProductNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Product not found",
		})
	case errors.As(err, &validationErr):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "Validation failed",
			"errors":  validationErr.Fields,
		})
	case errors.Is(err, services.ErrStoreUnavailable):
		log.Printf("Catalog request rejected: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Database not configured",
		})
	default:
		log.Printf("Catalog request failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
			"error":   err.Error(),
		})
	}
}

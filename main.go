package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/spf13/viper"

	"pastelpay/internal/handlers"
	"pastelpay/internal/repositories"
	"pastelpay/internal/services"
	"pastelpay/pkg/mongodb"
	"pastelpay/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	// Set up Viper to read configuration from environment variables
	viper.SetDefault("APP_PORT", ":8000")
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DATABASE_NAME", "pastelpay")
	viper.SetDefault("RABBITMQ_URL", "")
	viper.AutomaticEnv() // Load environment variables

	appPort := viper.GetString("APP_PORT")
	databaseURL := viper.GetString("DATABASE_URL")
	databaseName := viper.GetString("DATABASE_NAME")
	rabbitMQURL := viper.GetString("RABBITMQ_URL")

	// --- Initialize Document Store ---
	// The store handle is optional: without DATABASE_URL the API still
	// serves, but every catalog operation reports the store as
	// unavailable.
	var productRepo repositories.ProductRepository
	storeConfigured := false
	if databaseURL != "" {
		storeClient, err := mongodb.NewClient(mongodb.Config{
			URL:      databaseURL,
			Database: databaseName,
		})
		if err != nil {
			log.Printf("Failed to initialize MongoDB client: %v", err)
		} else {
			defer storeClient.Close()
			productRepo = repositories.NewMongoProductRepository(storeClient.Database())
			storeConfigured = true
		}
	} else {
		log.Println("DATABASE_URL not set; catalog operations will be unavailable")
	}

	// --- Initialize RabbitMQ Client (optional) ---
	// Catalog events are a side channel; the service runs without them.
	var events services.EventPublisher
	if rabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: rabbitMQURL})
		if err != nil {
			log.Printf("Failed to initialize RabbitMQ client: %v", err)
		} else {
			defer mqClient.Close()
			events = mqClient
		}
	}

	// --- Initialize Services ---
	catalogService := services.NewCatalogService(productRepo, events)

	// --- Initialize Handlers ---
	productHandler := handlers.NewProductHandler(catalogService)
	healthHandler := handlers.NewHealthHandler(storeConfigured)

	// --- Initialize Fiber App ---
	app := fiber.New()

	// --- Middleware ---
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(logger.New()) // Request logger
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "*",
	}))

	// --- API Routes ---
	healthHandler.RegisterRoutes(app)

	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", appPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := app.Listen(appPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}

	log.Println("Server gracefully stopped")
}

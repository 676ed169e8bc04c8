package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/cartwise/backend/config"
	httpDelivery "github.com/cartwise/backend/internal/delivery/http"
	"github.com/cartwise/backend/internal/infrastructure/gemini"
	"github.com/cartwise/backend/internal/infrastructure/serpapi"
	"github.com/cartwise/backend/internal/usecase"
)

func main() {
	// Load .env if present; real deployments set env vars directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("WARNING: could not read .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Cartwise Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Model: %s", cfg.Gemini.Model)

	ctx := context.Background()

	// Initialize infrastructure dependencies
	geminiClient, err := gemini.NewClient(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	if err != nil {
		log.Fatalf("Failed to create Gemini client: %v", err)
	}

	serpapiClient := serpapi.NewClient(cfg.SerpAPI.APIKey, cfg.SerpAPI.BaseURL, cfg.SerpAPI.Market)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		geminiClient.SetDebug(true)
		serpapiClient.SetDebug(true)
		log.Printf("Provider client debug mode enabled")
	}

	log.Printf("SerpApi configured: %s (market: %s)", cfg.SerpAPI.BaseURL, cfg.SerpAPI.Market)

	// Initialize usecase layer
	shoppingService := usecase.NewShoppingService(
		geminiClient,
		serpapiClient,
		geminiClient,
		usecase.ShoppingServiceConfig{
			TopNPerProduct: cfg.Pipeline.TopNPerProduct,
		},
	)

	log.Printf("Pipeline: top %d candidates per product", cfg.Pipeline.TopNPerProduct)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(shoppingService)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}

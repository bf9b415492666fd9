package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AleSenlle/el-brote-verde/auth"
	"github.com/AleSenlle/el-brote-verde/cart"
	"github.com/AleSenlle/el-brote-verde/catalog"
	"github.com/AleSenlle/el-brote-verde/preload"
	"github.com/AleSenlle/el-brote-verde/routes"
	"github.com/AleSenlle/el-brote-verde/storage"
)

func main() {
	log.Println("✅ Starting El Brote Verde API...")

	// Load environment variables
	_ = godotenv.Load()

	// Persistent key-value state (carts, session)
	store, err := storage.Open()
	if err != nil {
		log.Fatalf("❌ Failed to open store: %v", err)
	}

	// Remote product collection + optional botanical source
	productAPI := catalog.NewProductAPI(os.Getenv("MOCKAPI_URL"))
	products := catalog.NewProductStore(productAPI)
	trefle := catalog.NewTrefleClient(os.Getenv("TREFLE_URL"), os.Getenv("TREFLE_TOKEN"))
	aggregator := catalog.NewAggregator(products, trefle, time.Now().UnixNano())

	// Warm the product cache; a failed first fetch is not fatal, the
	// catalog degrades until the next refresh.
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := products.Fetch(ctx, 1, 50); err != nil {
		log.Printf("⚠️ Initial product fetch failed: %v", err)
	}
	cancel()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("❌ JWT_SECRET is not set")
	}

	preloader := preload.New()
	defer preloader.Cancel()

	deps := &routes.Deps{
		Products:   products,
		Aggregator: aggregator,
		Auth:       auth.New(store, secret),
		Carts:      cart.NewManager(store, cart.DefaultConfig),
		Preloader:  preloader,
		JWTSecret:  secret,
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, deps)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

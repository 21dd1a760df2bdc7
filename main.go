package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"

	"github.com/prabhu5211/Shopping-Cart/config"
	"github.com/prabhu5211/Shopping-Cart/routes"
	"github.com/prabhu5211/Shopping-Cart/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	s := initStore(cfg)

	// `shopping-cart seed` loads sample data and exits
	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seedDatabase(context.Background(), s); err != nil {
			log.Fatalf("❌ Seeding failed: %v", err)
		}
		return
	}

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, s)

	// Start server
	log.Printf("🚀 Server running on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore picks the persistence backend from config.
func initStore(cfg *config.Config) store.Store {
	if cfg.MemoryDB {
		log.Warn("⚠️ Using in-memory store; all data is lost on restart")
		return store.NewMemory()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("❌ DB connection failed: %v", err)
	}
	log.Printf("✅ Connected to MongoDB (%s)", cfg.MongoDB)
	return s
}

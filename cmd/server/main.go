package main

import (
	"log"

	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/ug2454/RAG-demo/internal/config"
	"github.com/ug2454/RAG-demo/internal/database"
	"github.com/ug2454/RAG-demo/internal/handler"
)

func main() {
	// Load .env file if exists
	godotenv.Load()

	// Load configuration
	cfg := config.Load()

	// Initialize database unless running on the in-memory store
	var db *gorm.DB
	if cfg.VectorStore != "memory" {
		var err error
		db, err = database.Connect(cfg)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}

		// Run migrations
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Setup router
	r := handler.SetupRouter(cfg, db)

	// Start server
	addr := cfg.Host + ":" + cfg.Port
	log.Printf("RAG Demo API starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

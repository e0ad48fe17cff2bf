package main

import (
	"log"

	"github.com/Mustafaa-nd/MNLab-Portfolio/config"
	"github.com/Mustafaa-nd/MNLab-Portfolio/db"
	"github.com/Mustafaa-nd/MNLab-Portfolio/routes"
	"github.com/Mustafaa-nd/MNLab-Portfolio/storage"
	"github.com/Mustafaa-nd/MNLab-Portfolio/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional; deployments usually set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}
	cfg := config.Load()

	// Initialize database
	db.InitDatabase(cfg.DBPath)

	achievements := store.NewAchievementStore(db.DB)
	sessions := store.NewSessionStore(db.DB, cfg.SessionTTL)

	if err := sessions.SeedAdmin(cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatal("Failed to seed admin account:", err)
	}
	// liked mirrors the last viewer action only; every process starts clean
	if err := achievements.ResetLiked(); err != nil {
		log.Fatal("Failed to reset liked flags:", err)
	}

	var images storage.ImageStore
	if cfg.ImageStorage == config.ImageStorageInline {
		images = storage.NewInlineStore()
	} else {
		fileStore, err := storage.NewFileStore(cfg.UploadDir)
		if err != nil {
			log.Fatal("Failed to prepare upload directory:", err)
		}
		images = fileStore
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))

	// Serve stored images when the file strategy is active
	if cfg.ImageStorage == config.ImageStorageFile {
		app.Static("/uploads", cfg.UploadDir)
	}

	// Setup routes
	routes.New(achievements, sessions, images).Setup(app)

	// Start server
	log.Fatal(app.Listen(cfg.Addr()))
}

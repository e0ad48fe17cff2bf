package db

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/Mustafaa-nd/MNLab-Portfolio/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDatabase(dbPath string) {
	var err error

	// In-memory DSNs (tests) have no file to prepare.
	if !strings.Contains(dbPath, "memory") {
		// Ensure the directory exists (create if it doesn't)
		dir := filepath.Dir(dbPath)
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0755); err != nil {
				log.Fatal("Failed to create database directory:", err)
			}
		}

		// Check if the database file exists
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			log.Println("Database file does not exist, creating:", dbPath)
			file, err := os.Create(dbPath)
			if err != nil {
				log.Fatal("Failed to create database file:", err)
			}
			file.Close()
		}
	}

	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	log.Println("Database connected successfully at", dbPath)

	// Auto migrate the schema
	DB.AutoMigrate(
		&models.Achievement{}, &models.Admin{}, &models.Session{},
	)
}

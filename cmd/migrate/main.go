package main

import (
	"context"
	"log"
	"os"

	"smart-kitchen-be/internal/provision"
	"smart-kitchen-be/pkg/database"

	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	// 2. Connect to Database using existing GORM helpers
	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	log.Println("Starting GORM Migration...")

	if err := provision.Migrate(db); err != nil {
		log.Fatal("Error: Migration failed:", err)
	}

	log.Println("Seeding kitchen catalog...")

	if err := provision.Seed(context.Background(), db); err != nil {
		log.Fatal("Error: Seeding failed:", err)
	}

	log.Println("✅ Migration and seeding complete")
}

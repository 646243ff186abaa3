package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/tatenda10/sms-sub003/app/config"
	"github.com/tatenda10/sms-sub003/app/database"
)

func main() {
	log.Println("Starting database migration...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		log.Fatal("Failed to get database instance")
	}
	defer db.Close()

	executeSQLFile(db, "schema.sql")

	if err := database.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	log.Println("Migration completed successfully!")
}

func executeSQLFile(db *sql.DB, filePath string) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		log.Printf("Skipping %s: %v", filePath, err)
		return
	}

	log.Printf("Executing %s...", filePath)
	if _, err := db.Exec(string(content)); err != nil {
		log.Fatalf("Error executing %s: %v", filePath, err)
	}
	log.Printf("Successfully executed %s", filePath)
}

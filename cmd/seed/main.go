package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/tatenda10/sms-sub003/app/config"
)

// Seeds an admin user and the default grading bands so a fresh install is usable.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	seedAdminUser(db)
	seedGradingCriteria(db)

	log.Println("Seeding completed")
}

func seedAdminUser(db *sql.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin user")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Fatal("Failed to hash admin password:", err)
	}

	var userID string
	err = db.QueryRow(`
		INSERT INTO users (email, password, first_name, last_name)
		VALUES ($1, $2, 'System', 'Admin')
		ON CONFLICT (email) DO UPDATE SET updated_at = NOW()
		RETURNING id
	`, email, string(hash)).Scan(&userID)
	if err != nil {
		log.Fatal("Failed to seed admin user:", err)
	}

	var roleID string
	err = db.QueryRow(`
		INSERT INTO roles (name) VALUES ('admin')
		ON CONFLICT (name) DO UPDATE SET updated_at = NOW()
		RETURNING id
	`).Scan(&roleID)
	if err != nil {
		log.Fatal("Failed to seed admin role:", err)
	}

	if _, err := db.Exec(`
		INSERT INTO user_roles (user_id, role_id) VALUES ($1, $2)
		ON CONFLICT DO NOTHING
	`, userID, roleID); err != nil {
		log.Fatal("Failed to assign admin role:", err)
	}

	log.Printf("Seeded admin user %s", email)
}

func seedGradingCriteria(db *sql.DB) {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM grading_criteria WHERE deleted_at IS NULL`).Scan(&count); err != nil {
		log.Fatal("Failed to check grading criteria:", err)
	}
	if count > 0 {
		log.Println("Grading criteria already present, skipping")
		return
	}

	bands := []struct {
		grade    string
		min, max float64
		points   int
	}{
		{"A", 80, 100, 12},
		{"B", 70, 79.99, 10},
		{"C", 60, 69.99, 8},
		{"D", 50, 59.99, 6},
		{"E", 40, 49.99, 4},
		{"F", 0, 39.99, 0},
	}

	for _, b := range bands {
		if _, err := db.Exec(`
			INSERT INTO grading_criteria (grade, min_mark, max_mark, points, is_active)
			VALUES ($1, $2, $3, $4, true)
		`, b.grade, b.min, b.max, b.points); err != nil {
			log.Fatal("Failed to seed grading criteria:", err)
		}
	}

	log.Printf("Seeded %d grading bands", len(bands))
}

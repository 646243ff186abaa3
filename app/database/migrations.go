package database

import (
	"database/sql"
	"log"
)

// RunMigrations checks and applies necessary schema updates
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	// 1. Add stream_id column to gradelevel_classes if not exists
	if err := addStreamColumn(db); err != nil {
		return err
	}

	// 2. Add password column to students (portal login) if not exists
	if err := addStudentPasswordColumn(db); err != nil {
		return err
	}

	// 3. Add overdue column to fees if not exists
	if err := addFeeOverdueColumn(db); err != nil {
		return err
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func addStreamColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'gradelevel_classes'
				AND column_name = 'stream_id'
			) THEN
				ALTER TABLE gradelevel_classes ADD COLUMN stream_id UUID REFERENCES streams(id);
				RAISE NOTICE 'Added stream_id column to gradelevel_classes';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for stream_id column: %v", err)
		return err
	}
	return nil
}

func addStudentPasswordColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'students'
				AND column_name = 'password'
			) THEN
				ALTER TABLE students ADD COLUMN password TEXT;
				RAISE NOTICE 'Added password column to students';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for student password column: %v", err)
		return err
	}
	return nil
}

func addFeeOverdueColumn(db *sql.DB) error {
	query := `
		DO $$
		BEGIN
			IF NOT EXISTS (
				SELECT 1
				FROM information_schema.columns
				WHERE table_name = 'fees'
				AND column_name = 'overdue'
			) THEN
				ALTER TABLE fees ADD COLUMN overdue BOOLEAN NOT NULL DEFAULT false;
				RAISE NOTICE 'Added overdue column to fees';
			END IF;
		END $$;
	`
	_, err := db.Exec(query)
	if err != nil {
		log.Printf("Failed to run migration for fee overdue column: %v", err)
		return err
	}
	return nil
}

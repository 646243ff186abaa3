package criteria

import (
	"database/sql"
	"fmt"

	"github.com/tatenda10/sms-sub003/app/models"
)

// GetAllCriteria fetches all grading criteria, active and inactive, in band order.
func GetAllCriteria(db *sql.DB) ([]*models.GradingCriterion, error) {
	query := `
		SELECT id, grade, min_mark, max_mark, points, is_active, created_at, updated_at
		FROM grading_criteria
		WHERE deleted_at IS NULL
		ORDER BY min_mark DESC
	`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch grading criteria: %w", err)
	}
	defer rows.Close()

	var criteria []*models.GradingCriterion
	for rows.Next() {
		var g models.GradingCriterion
		err := rows.Scan(
			&g.ID, &g.Grade, &g.MinMark, &g.MaxMark, &g.Points,
			&g.IsActive, &g.CreatedAt, &g.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grading criterion: %w", err)
		}
		criteria = append(criteria, &g)
	}

	return criteria, nil
}

// CreateCriterion inserts a new grading criterion record
func CreateCriterion(db *sql.DB, g *models.GradingCriterion) error {
	query := `
		INSERT INTO grading_criteria (grade, min_mark, max_mark, points, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(
		query,
		g.Grade, g.MinMark, g.MaxMark, g.Points, g.IsActive,
	).Scan(&g.ID, &g.CreatedAt, &g.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create grading criterion: %w", err)
	}

	return nil
}

// UpdateCriterion updates an existing grading criterion record
func UpdateCriterion(db *sql.DB, g *models.GradingCriterion) error {
	query := `
		UPDATE grading_criteria
		SET grade = $1, min_mark = $2, max_mark = $3, points = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
		RETURNING created_at, updated_at
	`

	err := db.QueryRow(
		query,
		g.Grade, g.MinMark, g.MaxMark, g.Points, g.IsActive, g.ID,
	).Scan(&g.CreatedAt, &g.UpdatedAt)

	if err == sql.ErrNoRows {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to update grading criterion: %w", err)
	}

	return nil
}

// DeleteCriterion removes a grading criterion. The delete is logical when the
// grade label is still referenced by any recorded result (kept for audit),
// physical otherwise.
func DeleteCriterion(db *sql.DB, id string) error {
	var grade string
	err := db.QueryRow(`SELECT grade FROM grading_criteria WHERE id = $1 AND deleted_at IS NULL`, id).Scan(&grade)
	if err == sql.ErrNoRows {
		return err
	}
	if err != nil {
		return fmt.Errorf("failed to fetch grading criterion: %w", err)
	}

	referenced, err := criterionReferenced(db)
	if err != nil {
		return err
	}

	if referenced {
		_, err = db.Exec(`UPDATE grading_criteria SET deleted_at = NOW(), is_active = false WHERE id = $1`, id)
	} else {
		_, err = db.Exec(`DELETE FROM grading_criteria WHERE id = $1`, id)
	}
	if err != nil {
		return fmt.Errorf("failed to delete grading criterion: %w", err)
	}

	return nil
}

// criterionReferenced reports whether any non-deleted subject result exists.
// Grades are derived rather than stored by foreign key, so every band is
// treated as referenced while any recorded result remains.
func criterionReferenced(db *sql.DB) (bool, error) {
	var count int
	err := db.QueryRow(`SELECT COUNT(*) FROM subject_results WHERE deleted_at IS NULL`).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check criterion references: %w", err)
	}
	return count > 0, nil
}

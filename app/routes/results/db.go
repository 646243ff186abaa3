package results

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/tatenda10/sms-sub003/app/models"
)

// GetSubjectResultsForStudent fetches a student's subject results for a class,
// term and year, with subject info and paper marks attached.
func GetSubjectResultsForStudent(db *sql.DB, studentID, classID, term, academicYear string) ([]*models.SubjectResult, error) {
	query := `
		SELECT
			r.id, r.student_id, r.subject_class_id, r.gradelevel_class_id,
			r.term, r.academic_year, r.coursework_mark, r.created_at, r.updated_at,
			sc.id, sc.name, sc.code,
			s.reg_number, s.first_name, s.last_name
		FROM subject_results r
		JOIN subject_classes sc ON r.subject_class_id = sc.id
		JOIN students s ON r.student_id = s.id
		WHERE r.student_id = $1 AND r.gradelevel_class_id = $2
			AND r.term = $3 AND r.academic_year = $4
			AND r.deleted_at IS NULL
		ORDER BY sc.code
	`

	rows, err := db.Query(query, studentID, classID, term, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject results: %w", err)
	}
	defer rows.Close()

	results, err := scanSubjectResults(rows)
	if err != nil {
		return nil, err
	}

	if err := attachPaperMarks(db, results); err != nil {
		return nil, err
	}

	return results, nil
}

// GetSubjectResultsForCohort fetches every subject result recorded for the
// given classes in a term and year, with paper marks attached. Used for
// class and stream ranking.
func GetSubjectResultsForCohort(db *sql.DB, classIDs []string, term, academicYear string) ([]*models.SubjectResult, error) {
	if len(classIDs) == 0 {
		return nil, nil
	}

	query := `
		SELECT
			r.id, r.student_id, r.subject_class_id, r.gradelevel_class_id,
			r.term, r.academic_year, r.coursework_mark, r.created_at, r.updated_at,
			sc.id, sc.name, sc.code,
			s.reg_number, s.first_name, s.last_name
		FROM subject_results r
		JOIN subject_classes sc ON r.subject_class_id = sc.id
		JOIN students s ON r.student_id = s.id
		WHERE r.gradelevel_class_id = ANY($1)
			AND r.term = $2 AND r.academic_year = $3
			AND r.deleted_at IS NULL AND s.deleted_at IS NULL AND s.is_active = true
		ORDER BY s.reg_number, sc.code
	`

	rows, err := db.Query(query, pq.Array(classIDs), term, academicYear)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cohort results: %w", err)
	}
	defer rows.Close()

	results, err := scanSubjectResults(rows)
	if err != nil {
		return nil, err
	}

	if err := attachPaperMarks(db, results); err != nil {
		return nil, err
	}

	return results, nil
}

func scanSubjectResults(rows *sql.Rows) ([]*models.SubjectResult, error) {
	var results []*models.SubjectResult
	for rows.Next() {
		var r models.SubjectResult
		var sc models.SubjectClass
		var student models.Student
		var coursework sql.NullFloat64

		err := rows.Scan(
			&r.ID, &r.StudentID, &r.SubjectClassID, &r.GradelevelClassID,
			&r.Term, &r.AcademicYear, &coursework, &r.CreatedAt, &r.UpdatedAt,
			&sc.ID, &sc.Name, &sc.Code,
			&student.RegNumber, &student.FirstName, &student.LastName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan subject result: %w", err)
		}

		if coursework.Valid {
			r.CourseworkMark = &coursework.Float64
		}
		student.ID = r.StudentID
		sc.GradelevelClassID = r.GradelevelClassID
		r.Student = &student
		r.SubjectClass = &sc
		results = append(results, &r)
	}

	return results, nil
}

// attachPaperMarks loads the paper marks for all given results in one query.
func attachPaperMarks(db *sql.DB, results []*models.SubjectResult) error {
	if len(results) == 0 {
		return nil
	}

	byID := make(map[string]*models.SubjectResult, len(results))
	ids := make([]string, len(results))
	for i, r := range results {
		ids[i] = r.ID
		byID[r.ID] = r
		r.PaperMarks = []*models.PaperMark{}
	}

	query := `
		SELECT id, subject_result_id, paper_name, mark, created_at, updated_at
		FROM paper_marks
		WHERE subject_result_id = ANY($1) AND deleted_at IS NULL
		ORDER BY paper_name
	`

	rows, err := db.Query(query, pq.Array(ids))
	if err != nil {
		return fmt.Errorf("failed to fetch paper marks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var pm models.PaperMark
		err := rows.Scan(&pm.ID, &pm.SubjectResultID, &pm.PaperName, &pm.Mark, &pm.CreatedAt, &pm.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to scan paper mark: %w", err)
		}
		if r, ok := byID[pm.SubjectResultID]; ok {
			r.PaperMarks = append(r.PaperMarks, &pm)
		}
	}

	return nil
}

// UpsertSubjectResult creates or updates a subject result and replaces its
// paper marks in one transaction, so readers never see a half-written set.
func UpsertSubjectResult(db *sql.DB, result *models.SubjectResult) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var existingID string
	err = tx.QueryRow(`
		SELECT id FROM subject_results
		WHERE student_id = $1 AND subject_class_id = $2 AND term = $3 AND academic_year = $4
			AND deleted_at IS NULL
	`, result.StudentID, result.SubjectClassID, result.Term, result.AcademicYear).Scan(&existingID)

	if err == sql.ErrNoRows {
		err = tx.QueryRow(`
			INSERT INTO subject_results (student_id, subject_class_id, gradelevel_class_id, term, academic_year, coursework_mark)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, created_at, updated_at
		`, result.StudentID, result.SubjectClassID, result.GradelevelClassID,
			result.Term, result.AcademicYear, result.CourseworkMark,
		).Scan(&result.ID, &result.CreatedAt, &result.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert subject result: %w", err)
		}
	} else if err == nil {
		result.ID = existingID
		err = tx.QueryRow(`
			UPDATE subject_results
			SET coursework_mark = $1, gradelevel_class_id = $2, updated_at = NOW()
			WHERE id = $3 AND deleted_at IS NULL
			RETURNING created_at, updated_at
		`, result.CourseworkMark, result.GradelevelClassID, existingID,
		).Scan(&result.CreatedAt, &result.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to update subject result: %w", err)
		}
	} else {
		return fmt.Errorf("failed to check existing subject result: %w", err)
	}

	// Replace paper marks wholesale; partial edits come back through the same endpoint.
	if _, err := tx.Exec(`DELETE FROM paper_marks WHERE subject_result_id = $1`, result.ID); err != nil {
		return fmt.Errorf("failed to clear paper marks: %w", err)
	}

	for _, pm := range result.PaperMarks {
		pm.SubjectResultID = result.ID
		err := tx.QueryRow(`
			INSERT INTO paper_marks (subject_result_id, paper_name, mark)
			VALUES ($1, $2, $3)
			RETURNING id, created_at, updated_at
		`, pm.SubjectResultID, pm.PaperName, pm.Mark).Scan(&pm.ID, &pm.CreatedAt, &pm.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert paper mark: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteSubjectResult soft deletes a subject result and its paper marks.
func DeleteSubjectResult(db *sql.DB, resultID string) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		UPDATE subject_results SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`, resultID)
	if err != nil {
		return fmt.Errorf("failed to delete subject result: %w", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	if _, err := tx.Exec(`
		UPDATE paper_marks SET deleted_at = NOW()
		WHERE subject_result_id = $1 AND deleted_at IS NULL
	`, resultID); err != nil {
		return fmt.Errorf("failed to delete paper marks: %w", err)
	}

	return tx.Commit()
}

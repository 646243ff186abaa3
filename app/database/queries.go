package database

import (
	"database/sql"
	"fmt"

	"github.com/tatenda10/sms-sub003/app/models"
)

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `SELECT r.id, r.name, r.is_active, r.created_at, r.updated_at
			  FROM roles r
			  JOIN user_roles ur ON r.id = ur.role_id
			  WHERE ur.user_id = $1 AND r.is_active = true`

	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user roles: %w", err)
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		role := &models.Role{}
		if err := rows.Scan(&role.ID, &role.Name, &role.IsActive, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		roles = append(roles, role)
	}

	return roles, nil
}

func UpdateUserPassword(db *sql.DB, userID, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// GetStudentByRegNumber fetches an active student by registration number.
// Returns (nil, nil) when no such student exists.
func GetStudentByRegNumber(db *sql.DB, regNumber string) (*models.Student, error) {
	query := `
		SELECT id, reg_number, first_name, last_name, gender, gradelevel_class_id,
			COALESCE(password, ''), is_active, created_at, updated_at
		FROM students
		WHERE reg_number = $1 AND is_active = true AND deleted_at IS NULL
	`

	var student models.Student
	var gender, classID sql.NullString

	err := db.QueryRow(query, regNumber).Scan(
		&student.ID, &student.RegNumber, &student.FirstName, &student.LastName,
		&gender, &classID, &student.Password, &student.IsActive,
		&student.CreatedAt, &student.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch student: %w", err)
	}

	if gender.Valid {
		genderVal := models.Gender(gender.String)
		student.Gender = &genderVal
	}
	if classID.Valid {
		student.GradelevelClassID = &classID.String
	}

	return &student, nil
}

// GetStudentsByClassID fetches all active students in a gradelevel class.
func GetStudentsByClassID(db *sql.DB, classID string) ([]*models.Student, error) {
	query := `
		SELECT id, reg_number, first_name, last_name, gender, gradelevel_class_id,
			is_active, created_at, updated_at
		FROM students
		WHERE gradelevel_class_id = $1 AND is_active = true AND deleted_at IS NULL
		ORDER BY first_name, last_name
	`

	rows, err := db.Query(query, classID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		var student models.Student
		var gender, cID sql.NullString

		err := rows.Scan(
			&student.ID, &student.RegNumber, &student.FirstName, &student.LastName,
			&gender, &cID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan student: %w", err)
		}

		if gender.Valid {
			genderVal := models.Gender(gender.String)
			student.Gender = &genderVal
		}
		if cID.Valid {
			student.GradelevelClassID = &cID.String
		}

		students = append(students, &student)
	}

	return students, nil
}

// GetClassByID fetches a gradelevel class. Returns (nil, nil) when absent.
func GetClassByID(db *sql.DB, classID string) (*models.GradelevelClass, error) {
	query := `
		SELECT id, name, code, stream_id, is_active, created_at, updated_at
		FROM gradelevel_classes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var class models.GradelevelClass
	var streamID sql.NullString

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Code, &streamID,
		&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch class: %w", err)
	}

	if streamID.Valid {
		class.StreamID = &streamID.String
	}

	return &class, nil
}

// GetClassIDsByStreamID returns the ids of all active classes in a stream.
func GetClassIDsByStreamID(db *sql.DB, streamID string) ([]string, error) {
	query := `
		SELECT id FROM gradelevel_classes
		WHERE stream_id = $1 AND is_active = true AND deleted_at IS NULL
	`

	rows, err := db.Query(query, streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stream classes: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan class id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// GetSubjectClassByID fetches a subject class. Returns (nil, nil) when absent.
func GetSubjectClassByID(db *sql.DB, subjectClassID string) (*models.SubjectClass, error) {
	query := `
		SELECT id, gradelevel_class_id, name, code, is_active, created_at, updated_at
		FROM subject_classes
		WHERE id = $1 AND deleted_at IS NULL
	`

	var sc models.SubjectClass
	err := db.QueryRow(query, subjectClassID).Scan(
		&sc.ID, &sc.GradelevelClassID, &sc.Name, &sc.Code,
		&sc.IsActive, &sc.CreatedAt, &sc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch subject class: %w", err)
	}

	return &sc, nil
}

package students

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

var validate = validator.New()

// GetStudentsAPI returns students with search and pagination
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	search := c.Query("search")
	classID := c.Query("gradelevel_class_id")
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)

	query := `SELECT id, reg_number, first_name, last_name, gender, gradelevel_class_id,
			  is_active, created_at, updated_at
			  FROM students
			  WHERE is_active = true AND deleted_at IS NULL`

	var args []interface{}

	if classID != "" {
		query += fmt.Sprintf(" AND gradelevel_class_id = $%d", len(args)+1)
		args = append(args, classID)
	}

	if search != "" {
		searchPattern := "%" + strings.ToLower(search) + "%"
		query += fmt.Sprintf(` AND (LOWER(reg_number) LIKE $%d
							   OR LOWER(first_name) LIKE $%d
							   OR LOWER(last_name) LIKE $%d
							   OR LOWER(first_name || ' ' || last_name) LIKE $%d)`,
			len(args)+1, len(args)+2, len(args)+3, len(args)+4)
		args = append(args, searchPattern, searchPattern, searchPattern, searchPattern)
	}

	query += fmt.Sprintf(" ORDER BY first_name, last_name LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := db.Query(query, args...)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		var gender, cID sql.NullString

		err := rows.Scan(
			&student.ID, &student.RegNumber, &student.FirstName, &student.LastName,
			&gender, &cID, &student.IsActive, &student.CreatedAt, &student.UpdatedAt,
		)
		if err != nil {
			continue
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

	return c.JSON(fiber.Map{
		"success":     true,
		"students":    students,
		"has_more":    len(students) == limit,
		"next_offset": offset + len(students),
	})
}

// GetStudentAPI returns one student by registration number
func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Params("regNumber")

	student, err := database.GetStudentByRegNumber(db, regNumber)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch student")
	}
	if student == nil {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

// CreateStudentAPI enrolls a new student
func CreateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		RegNumber         string  `json:"reg_number" validate:"required"`
		FirstName         string  `json:"first_name" validate:"required"`
		LastName          string  `json:"last_name" validate:"required"`
		Gender            *string `json:"gender" validate:"omitempty,oneof=male female other"`
		GradelevelClassID *string `json:"gradelevel_class_id" validate:"omitempty,uuid"`
		PortalPassword    string  `json:"portal_password" validate:"omitempty,min=6"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var passwordHash sql.NullString
	if req.PortalPassword != "" {
		hash, err := auth.HashPassword(req.PortalPassword)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Failed to hash portal password")
		}
		passwordHash = sql.NullString{String: hash, Valid: true}
	}

	student := &models.Student{
		RegNumber:         req.RegNumber,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		GradelevelClassID: req.GradelevelClassID,
		IsActive:          true,
	}
	if req.Gender != nil {
		genderVal := models.Gender(*req.Gender)
		student.Gender = &genderVal
	}

	query := `
		INSERT INTO students (reg_number, first_name, last_name, gender, gradelevel_class_id, password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := db.QueryRow(query,
		student.RegNumber, student.FirstName, student.LastName,
		req.Gender, student.GradelevelClassID, passwordHash,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create student")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

// UpdateStudentAPI updates a student's details
func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Params("regNumber")

	var req struct {
		FirstName         string  `json:"first_name" validate:"required"`
		LastName          string  `json:"last_name" validate:"required"`
		GradelevelClassID *string `json:"gradelevel_class_id" validate:"omitempty,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	query := `
		UPDATE students
		SET first_name = $1, last_name = $2, gradelevel_class_id = $3, updated_at = NOW()
		WHERE reg_number = $4 AND deleted_at IS NULL
	`

	result, err := db.Exec(query, req.FirstName, req.LastName, req.GradelevelClassID, regNumber)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to update student")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
	})
}

// DeleteStudentAPI soft deletes a student
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Params("regNumber")

	query := `UPDATE students SET deleted_at = NOW(), is_active = false
			  WHERE reg_number = $1 AND deleted_at IS NULL`

	result, err := db.Exec(query, regNumber)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to delete student")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil || rowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student deleted successfully",
	})
}

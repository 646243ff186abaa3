package classes

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
)

var validate = validator.New()

// GetClassesAPI returns all active gradelevel classes
func GetClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classes, err := GetAllClasses(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"classes": classes,
	})
}

// GetClassAPI returns one class with its roster
func GetClassAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch class")
	}
	if class == nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	students, err := database.GetStudentsByClassID(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch students")
	}
	class.Students = students
	class.StudentCount = len(students)

	return c.JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// CreateClassAPI creates a gradelevel class
func CreateClassAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name     string  `json:"name" validate:"required"`
		Code     string  `json:"code" validate:"required"`
		StreamID *string `json:"stream_id" validate:"omitempty,uuid"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	class := &models.GradelevelClass{
		Name:     req.Name,
		Code:     req.Code,
		StreamID: req.StreamID,
		IsActive: true,
	}

	query := `INSERT INTO gradelevel_classes (name, code, stream_id)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, class.Name, class.Code, class.StreamID).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"class":   class,
	})
}

// GetStreamsAPI returns all active streams
func GetStreamsAPI(c *fiber.Ctx, db *sql.DB) error {
	streams, err := GetAllStreams(db)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch streams")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"streams": streams,
	})
}

// CreateStreamAPI creates a stream
func CreateStreamAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Name string `json:"name" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	stream := &models.Stream{Name: req.Name, IsActive: true}

	query := `INSERT INTO streams (name) VALUES ($1)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query, stream.Name).
		Scan(&stream.ID, &stream.CreatedAt, &stream.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create stream")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"stream":  stream,
	})
}

// GetSubjectClassesAPI returns the subjects taught to a class
func GetSubjectClassesAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")

	subjectClasses, err := GetSubjectClassesForClass(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch subject classes")
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"subject_classes": subjectClasses,
	})
}

// CreateSubjectClassAPI attaches a subject to a class
func CreateSubjectClassAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")

	var req struct {
		Name string `json:"name" validate:"required"`
		Code string `json:"code" validate:"required"`
	}

	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	class, err := database.GetClassByID(db, classID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to verify class")
	}
	if class == nil {
		return fiber.NewError(fiber.StatusNotFound, "Class not found")
	}

	sc := &models.SubjectClass{
		GradelevelClassID: classID,
		Name:              req.Name,
		Code:              req.Code,
		IsActive:          true,
	}

	query := `INSERT INTO subject_classes (gradelevel_class_id, name, code)
			  VALUES ($1, $2, $3)
			  RETURNING id, created_at, updated_at`

	err = db.QueryRow(query, sc.GradelevelClassID, sc.Name, sc.Code).
		Scan(&sc.ID, &sc.CreatedAt, &sc.UpdatedAt)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to create subject class")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"subject_class": sc,
	})
}

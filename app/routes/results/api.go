package results

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
)

var validate = validator.New()

// GetStudentResultsAPI returns one student's derived results with positions.
// Staff path: no balance check.
func GetStudentResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Params("regNumber")
	classID := c.Query("gradelevel_class_id")
	term := c.Query("term")
	academicYear := c.Query("academic_year")

	if regNumber == "" || classID == "" || term == "" || academicYear == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "gradelevel_class_id, term and academic_year are required",
		})
	}
	if _, err := uuid.Parse(classID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "gradelevel_class_id must be a valid uuid",
		})
	}

	report, err := BuildStudentReport(db, regNumber, classID, term, academicYear)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student results",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

// GetClassResultsAPI returns the whole-class ranked view.
func GetClassResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	classID := c.Params("classId")
	term := c.Query("term")
	academicYear := c.Query("academic_year")

	if classID == "" || term == "" || academicYear == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "classId, term and academic_year are required",
		})
	}
	if _, err := uuid.Parse(classID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "classId must be a valid uuid",
		})
	}

	rows, err := BuildClassReport(db, classID, term, academicYear)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch class results",
		})
	}

	return c.JSON(fiber.Map{
		"success":     true,
		"per_student": rows,
		"count":       len(rows),
	})
}

// UpsertSubjectResultAPI creates or updates a subject result with its paper marks.
func UpsertSubjectResultAPI(c *fiber.Ctx, db *sql.DB) error {
	var request struct {
		StudentRegNumber  string   `json:"student_reg_number" validate:"required"`
		SubjectClassID    string   `json:"subject_class_id" validate:"required,uuid"`
		GradelevelClassID string   `json:"gradelevel_class_id" validate:"required,uuid"`
		Term              string   `json:"term" validate:"required"`
		AcademicYear      string   `json:"academic_year" validate:"required"`
		CourseworkMark    *float64 `json:"coursework_mark" validate:"omitempty,gte=0,lte=100"`
		PaperMarks        []struct {
			PaperName string  `json:"paper_name" validate:"required"`
			Mark      float64 `json:"mark" validate:"gte=0,lte=100"`
		} `json:"paper_marks" validate:"dive"`
	}

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	student, err := database.GetStudentByRegNumber(db, request.StudentRegNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	if student == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Student not found",
		})
	}

	subjectClass, err := database.GetSubjectClassByID(db, request.SubjectClassID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch subject class",
		})
	}
	if subjectClass == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Subject class not found",
		})
	}

	result := &models.SubjectResult{
		StudentID:         student.ID,
		SubjectClassID:    request.SubjectClassID,
		GradelevelClassID: request.GradelevelClassID,
		Term:              request.Term,
		AcademicYear:      request.AcademicYear,
		CourseworkMark:    request.CourseworkMark,
	}
	for _, pm := range request.PaperMarks {
		result.PaperMarks = append(result.PaperMarks, &models.PaperMark{
			PaperName: pm.PaperName,
			Mark:      pm.Mark,
		})
	}

	if err := UpsertSubjectResult(db, result); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save subject result",
		})
	}

	result.Student = student

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subject result saved successfully",
		"result":  result,
	})
}

// DeleteSubjectResultAPI removes a subject result and its paper marks.
func DeleteSubjectResultAPI(c *fiber.Ctx, db *sql.DB) error {
	resultID := c.Params("id")
	if _, err := uuid.Parse(resultID); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "id must be a valid uuid",
		})
	}

	if err := DeleteSubjectResult(db, resultID); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Subject result not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete subject result",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Subject result deleted successfully",
	})
}

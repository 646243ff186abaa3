package portal

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/models"
	"github.com/tatenda10/sms-sub003/app/routes/announcements"
	"github.com/tatenda10/sms-sub003/app/routes/auth"
	"github.com/tatenda10/sms-sub003/app/routes/fees"
	"github.com/tatenda10/sms-sub003/app/routes/results"
)

// LoginAPI authenticates a student by registration number and password.
func LoginAPI(c *fiber.Ctx, db *sql.DB) error {
	type LoginRequest struct {
		RegNumber string `json:"reg_number"`
		Password  string `json:"password"`
	}

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request"})
	}

	student, err := database.GetStudentByRegNumber(db, req.RegNumber)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}
	if student == nil || student.Password == "" || !auth.CheckPasswordHash(req.Password, student.Password) {
		return c.Status(401).JSON(fiber.Map{"error": "Invalid credentials"})
	}

	token, err := auth.GeneratePortalJWT(student.ID, student.RegNumber)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	c.Cookie(&fiber.Cookie{
		Name:     "portal_token",
		Value:    token,
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"message": "Login successful",
		"token":   token,
		"student": student,
	})
}

// balanceGate writes the structured denial response when a student's
// outstanding fees block results access. Reports whether the request was
// denied; a denied request must never receive a results payload.
func balanceGate(c *fiber.Ctx, status *models.BalanceStatus) bool {
	if status.CanViewResults {
		return false
	}

	c.Status(fiber.StatusForbidden).JSON(fiber.Map{
		"success":         false,
		"code":            "access_denied",
		"error":           "Results are withheld until outstanding fees are cleared",
		"current_balance": status.CurrentBalance,
	})
	return true
}

// GetMyResultsAPI returns the logged-in student's derived results. The
// balance gate runs first: a student with outstanding fees gets a structured
// access_denied response carrying the balance, never a results payload.
func GetMyResultsAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Locals("student_reg_number").(string)
	term := c.Query("term")
	academicYear := c.Query("academic_year")

	if term == "" || academicYear == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "term and academic_year are required",
		})
	}

	student, err := database.GetStudentByRegNumber(db, regNumber)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch student",
		})
	}
	if student == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"report":  &results.StudentReport{Results: nil, Count: 0},
		})
	}

	status, err := fees.GetBalanceStatus(db, student)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to check balance",
		})
	}
	if denied := balanceGate(c, status); denied {
		return nil
	}

	classID := c.Query("gradelevel_class_id")
	if classID == "" && student.GradelevelClassID != nil {
		classID = *student.GradelevelClassID
	}
	if classID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "gradelevel_class_id is required",
		})
	}

	report, err := results.BuildStudentReport(db, regNumber, classID, term, academicYear)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch results",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"report":  report,
	})
}

// GetMyBalanceAPI returns the logged-in student's balance status. Always
// visible: students may check what they owe even when results are withheld.
func GetMyBalanceAPI(c *fiber.Ctx, db *sql.DB) error {
	regNumber := c.Locals("student_reg_number").(string)

	student, err := database.GetStudentByRegNumber(db, regNumber)
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

	status, err := fees.GetBalanceStatus(db, student)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute balance",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    status,
	})
}

// GetAnnouncementsAPI returns published school announcements.
func GetAnnouncementsAPI(c *fiber.Ctx, db *sql.DB) error {
	published, err := announcements.GetPublishedAnnouncements(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch announcements",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    published,
	})
}

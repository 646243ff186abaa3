package criteria

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/models"
)

var validate = validator.New()

// CriterionRequest is the staff-facing payload for creating or editing a grading band.
type CriterionRequest struct {
	Grade    string  `json:"grade" validate:"required"`
	MinMark  float64 `json:"min_mark" validate:"gte=0,lte=100"`
	MaxMark  float64 `json:"max_mark" validate:"gte=0,lte=100,gtefield=MinMark"`
	Points   int     `json:"points" validate:"gte=0"`
	IsActive *bool   `json:"is_active"`
}

// GetCriteriaAPI returns all grading criteria
func GetCriteriaAPI(c *fiber.Ctx, db *sql.DB) error {
	criteria, err := GetAllCriteria(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch grading criteria",
		})
	}

	return c.JSON(criteria)
}

// CreateCriterionAPI handles the creation of a new grading criterion
func CreateCriterionAPI(c *fiber.Ctx, db *sql.DB) error {
	var req CriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g := &models.GradingCriterion{
		Grade:    req.Grade,
		MinMark:  req.MinMark,
		MaxMark:  req.MaxMark,
		Points:   req.Points,
		IsActive: true,
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	if err := CreateCriterion(db, g); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create grading criterion",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(g)
}

// UpdateCriterionAPI handles updating an existing grading criterion
func UpdateCriterionAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	var req CriterionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	g := &models.GradingCriterion{
		ID:       id,
		Grade:    req.Grade,
		MinMark:  req.MinMark,
		MaxMark:  req.MaxMark,
		Points:   req.Points,
		IsActive: true,
	}
	if req.IsActive != nil {
		g.IsActive = *req.IsActive
	}

	if err := UpdateCriterion(db, g); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Grading criterion not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update grading criterion",
		})
	}

	return c.JSON(g)
}

// DeleteCriterionAPI handles the deletion of a grading criterion
func DeleteCriterionAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")
	if err := DeleteCriterion(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Grading criterion not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete grading criterion",
		})
	}

	return c.SendStatus(fiber.StatusNoContent)
}

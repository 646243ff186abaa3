package announcements

import (
	"database/sql"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/models"
)

var validate = validator.New()

// GetAnnouncementsAPI returns all announcements for staff
func GetAnnouncementsAPI(c *fiber.Ctx, db *sql.DB) error {
	announcements, err := GetAllAnnouncements(db)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch announcements",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    announcements,
	})
}

// CreateAnnouncementAPI creates a new announcement
func CreateAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	var req struct {
		Title       string `json:"title" validate:"required"`
		Body        string `json:"body" validate:"required"`
		IsPublished bool   `json:"is_published"`
	}

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

	a := &models.Announcement{
		Title:       req.Title,
		Body:        req.Body,
		IsPublished: req.IsPublished,
	}

	if err := CreateAnnouncement(db, a); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create announcement",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(a)
}

// PublishAnnouncementAPI publishes an announcement to the portal
func PublishAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	if err := PublishAnnouncement(db, id); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Announcement not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to publish announcement",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Announcement published successfully",
	})
}

// DeleteAnnouncementAPI removes an announcement
func DeleteAnnouncementAPI(c *fiber.Ctx, db *sql.DB) error {
	id := c.Params("id")

	if err := DeleteAnnouncement(db, id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to delete announcement",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Announcement deleted successfully",
	})
}

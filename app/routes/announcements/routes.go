package announcements

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupAnnouncementsRoutes sets up the staff announcement routes
func SetupAnnouncementsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/announcements")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetAnnouncementsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateAnnouncementAPI(c, db) })
	api.Put("/:id/publish", func(c *fiber.Ctx) error { return PublishAnnouncementAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteAnnouncementAPI(c, db) })
}

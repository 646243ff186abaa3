package portal

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupPortalRoutes sets up the student-facing portal routes
func SetupPortalRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/portal")

	// Public
	api.Post("/login", func(c *fiber.Ctx) error { return LoginAPI(c, db) })

	// Student-authenticated
	api.Use(auth.PortalMiddleware)
	api.Get("/results", func(c *fiber.Ctx) error { return GetMyResultsAPI(c, db) })
	api.Get("/balance", func(c *fiber.Ctx) error { return GetMyBalanceAPI(c, db) })
	api.Get("/announcements", func(c *fiber.Ctx) error { return GetAnnouncementsAPI(c, db) })
}

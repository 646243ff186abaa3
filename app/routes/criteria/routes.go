package criteria

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupCriteriaRoutes sets up the grading criteria routes
func SetupCriteriaRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/settings/criteria")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetCriteriaAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateCriterionAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateCriterionAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteCriterionAPI(c, db) })
}

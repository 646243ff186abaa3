package results

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupResultsRoutes sets up all results-related routes (staff/admin paths)
func SetupResultsRoutes(app *fiber.App, db *sql.DB) {
	api := app.Group("/api/results")
	api.Use(auth.AuthMiddleware)
	api.Get("/student/:regNumber", func(c *fiber.Ctx) error { return GetStudentResultsAPI(c, db) })
	api.Get("/class/:classId", func(c *fiber.Ctx) error { return GetClassResultsAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return UpsertSubjectResultAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteSubjectResultAPI(c, db) })
}

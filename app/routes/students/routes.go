package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupStudentsRoutes registers the student roster endpoints
func SetupStudentsRoutes(app *fiber.App, db *sql.DB) {
	group := app.Group("/api/students", auth.AuthMiddleware)

	group.Get("/", func(c *fiber.Ctx) error {
		return GetStudentsAPI(c, db)
	})

	group.Get("/:regNumber", func(c *fiber.Ctx) error {
		return GetStudentAPI(c, db)
	})

	group.Post("/", func(c *fiber.Ctx) error {
		return CreateStudentAPI(c, db)
	})

	group.Put("/:regNumber", func(c *fiber.Ctx) error {
		return UpdateStudentAPI(c, db)
	})

	group.Delete("/:regNumber", func(c *fiber.Ctx) error {
		return DeleteStudentAPI(c, db)
	})
}

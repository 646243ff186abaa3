package classes

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupClassesRoutes registers class, stream and subject class endpoints
func SetupClassesRoutes(app *fiber.App, db *sql.DB) {
	group := app.Group("/api/classes", auth.AuthMiddleware)

	group.Get("/", func(c *fiber.Ctx) error {
		return GetClassesAPI(c, db)
	})

	group.Post("/", func(c *fiber.Ctx) error {
		return CreateClassAPI(c, db)
	})

	group.Get("/streams", func(c *fiber.Ctx) error {
		return GetStreamsAPI(c, db)
	})

	group.Post("/streams", func(c *fiber.Ctx) error {
		return CreateStreamAPI(c, db)
	})

	group.Get("/:classId", func(c *fiber.Ctx) error {
		return GetClassAPI(c, db)
	})

	group.Get("/:classId/subjects", func(c *fiber.Ctx) error {
		return GetSubjectClassesAPI(c, db)
	})

	group.Post("/:classId/subjects", func(c *fiber.Ctx) error {
		return CreateSubjectClassAPI(c, db)
	})
}

package fees

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tatenda10/sms-sub003/app/config"
	"github.com/tatenda10/sms-sub003/app/routes/auth"
)

// SetupFeesRoutes sets up all fees-related routes
func SetupFeesRoutes(app *fiber.App) {
	db := config.GetDB()

	api := app.Group("/api/fees")
	api.Use(auth.AuthMiddleware)
	api.Get("/", func(c *fiber.Ctx) error { return GetFeesAPI(c, db) })
	api.Get("/stats", func(c *fiber.Ctx) error { return GetFeeStatsAPI(c, db) })
	api.Get("/balance/:regNumber", func(c *fiber.Ctx) error { return GetBalanceStatusAPI(c, db) })
	api.Post("/", func(c *fiber.Ctx) error { return CreateFeeAPI(c, db) })
	api.Put("/:id", func(c *fiber.Ctx) error { return UpdateFeeAPI(c, db) })
	api.Put("/:id/pay", func(c *fiber.Ctx) error { return MarkFeeAsPaidAPI(c, db) })
	api.Delete("/:id", func(c *fiber.Ctx) error { return DeleteFeeAPI(c, db) })
}

package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"

	"github.com/tatenda10/sms-sub003/app/config"
	"github.com/tatenda10/sms-sub003/app/database"
	"github.com/tatenda10/sms-sub003/app/routes/announcements"
	"github.com/tatenda10/sms-sub003/app/routes/auth"
	"github.com/tatenda10/sms-sub003/app/routes/classes"
	"github.com/tatenda10/sms-sub003/app/routes/criteria"
	"github.com/tatenda10/sms-sub003/app/routes/fees"
	"github.com/tatenda10/sms-sub003/app/routes/portal"
	"github.com/tatenda10/sms-sub003/app/routes/results"
	"github.com/tatenda10/sms-sub003/app/routes/students"
	"github.com/tatenda10/sms-sub003/app/services"
)

// customErrorHandler renders all errors as JSON API responses
func customErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Load environment from .env when present
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Set global time zone to East Africa Time
	loc, err := time.LoadLocation("Africa/Kampala")
	if err != nil {
		log.Printf("Warning: Failed to load Africa/Kampala location, falling back to UTC+3: %v", err)
		time.Local = time.FixedZone("EAT", 3*60*60)
	} else {
		time.Local = loc
	}

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start background scheduler
	services.StartScheduler(config.GetDB())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOriginsFunc: func(origin string) bool { return true },
		AllowCredentials: true,
	}))

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app, config.GetDB())

	// Setup classes routes
	classes.SetupClassesRoutes(app, config.GetDB())

	// Setup grading criteria routes
	criteria.SetupCriteriaRoutes(app, config.GetDB())

	// Setup results routes
	results.SetupResultsRoutes(app, config.GetDB())

	// Setup fees routes
	fees.SetupFeesRoutes(app)

	// Setup student portal routes
	portal.SetupPortalRoutes(app, config.GetDB())

	// Setup announcements routes
	announcements.SetupAnnouncementsRoutes(app, config.GetDB())

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Resource not found")
	})

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}

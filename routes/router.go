package routes

import (
	"serenemind.app/configs"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
)

// SetupRoutes wires every application route and the shared middleware.
func SetupRoutes(app *fiber.App, cfg *configs.AppConfig) {
	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(initializeSession())

	registerWellnessRoutes(app, cfg)
	registerClinicRoutes(app)

	// Catch-all, must come last.
	app.Use(notFoundHandler)
}

// initializeSession exposes the session store to every handler via Locals.
func initializeSession() fiber.Handler {
	sessionStore := configs.SetupSession()
	return func(c *fiber.Ctx) error {
		c.Locals("session_store", sessionStore)
		return c.Next()
	}
}

func notFoundHandler(c *fiber.Ctx) error {
	accepts := c.Accepts("application/json", "text/html")
	switch accepts {
	case "application/json":
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
	default:
		return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
			"Title": "Page Not Found",
		}, "layouts/error_layout")
	}
}

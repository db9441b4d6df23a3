package routes

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/middlewares"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, cleanupService services.ICleanupService) {
	app.Use(middlewares.ZapLogger())

	registerWebsiteRoutes(app)
	registerPanelRoutes(app)
	registerCronRoutes(app, cleanupService)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).
			Render("errors/404", fiber.Map{}, "layouts/website")
	})
}

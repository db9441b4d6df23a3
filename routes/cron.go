package routes

import (
	handlers "github.com/BapNonVoDich/TheWellingtonOffices-sub000/handlers/panel"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/middlewares"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

func registerCronRoutes(app *fiber.App, cleanupService services.ICleanupService) {
	cleanupHandler := handlers.NewCleanupHandler(cleanupService)

	app.Post("/cron/cleanup-images", middlewares.CronTokenMiddleware, cleanupHandler.Run)
}

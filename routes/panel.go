package routes

import (
	handlers "github.com/BapNonVoDich/TheWellingtonOffices-sub000/handlers/panel"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerPanelRoutes(app *fiber.App) {
	authHandler := handlers.NewAuthHandler()
	dashboardHandler := handlers.NewDashboardHandler()
	propertyHandler := handlers.NewPropertyHandler()
	officeHandler := handlers.NewOfficeHandler()
	postHandler := handlers.NewPostHandler()
	sectionHandler := handlers.NewHomeSectionHandler()
	locationHandler := handlers.NewLocationHandler()

	app.Get("/panel/login", middlewares.GuestMiddleware, authHandler.ShowLogin)
	app.Post("/panel/login", middlewares.GuestMiddleware, authHandler.Login)

	panel := app.Group("/panel", middlewares.AuthMiddleware)

	panel.Get("/", dashboardHandler.Index)
	panel.Get("/logout", authHandler.Logout)

	panel.Get("/properties", propertyHandler.List)
	panel.Get("/properties/create", propertyHandler.ShowCreate)
	panel.Post("/properties", propertyHandler.Create)
	panel.Get("/properties/:id/edit", propertyHandler.ShowEdit)
	panel.Post("/properties/:id", propertyHandler.Update)
	panel.Post("/properties/:id/delete", propertyHandler.Delete)

	panel.Get("/offices", officeHandler.List)
	panel.Post("/offices", officeHandler.Create)
	panel.Post("/offices/:id", officeHandler.Update)
	panel.Post("/offices/:id/delete", officeHandler.Delete)

	panel.Get("/posts", postHandler.List)
	panel.Get("/posts/create", postHandler.ShowCreate)
	panel.Post("/posts", postHandler.Create)
	panel.Get("/posts/:id/edit", postHandler.ShowEdit)
	panel.Post("/posts/:id", postHandler.Update)
	panel.Post("/posts/:id/delete", postHandler.Delete)

	panel.Get("/home-sections", sectionHandler.List)
	panel.Post("/home-sections", sectionHandler.Save)
	panel.Post("/home-sections/:id", sectionHandler.Save)
	panel.Post("/home-sections/:id/delete", sectionHandler.Delete)

	panel.Get("/api/location-options", locationHandler.Options)
}

package routes

import (
	handlers "github.com/BapNonVoDich/TheWellingtonOffices-sub000/handlers/website"

	"github.com/gofiber/fiber/v2"
)

func registerWebsiteRoutes(app *fiber.App) {
	homeHandler := handlers.NewHomeHandler()
	propertyHandler := handlers.NewPropertyHandler()
	officeHandler := handlers.NewOfficeHandler()
	postHandler := handlers.NewPostHandler()
	contactHandler := handlers.NewContactHandler()
	sitemapHandler := handlers.NewSitemapHandler()

	app.Get("/", homeHandler.Index)

	app.Get("/toa-nha", propertyHandler.List)
	app.Get("/toa-nha/:slug", propertyHandler.Detail)

	app.Get("/van-phong", officeHandler.List)

	app.Get("/tin-tuc", postHandler.List)
	app.Get("/tin-tuc/:slug", postHandler.Detail)

	app.Get("/lien-he", contactHandler.Show)
	app.Post("/lien-he", contactHandler.Submit)

	app.Get("/sitemap.xml", sitemapHandler.Sitemap)
	app.Get("/robots.txt", sitemapHandler.Robots)
}

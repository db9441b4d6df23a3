package handlers

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/databaseconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type SitemapHandler struct {
	sitemapService services.ISitemapService
}

func NewSitemapHandler() *SitemapHandler {
	return &SitemapHandler{sitemapService: services.NewSitemapService(databaseconfig.GetDB())}
}

func (h *SitemapHandler) Sitemap(c *fiber.Ctx) error {
	out, err := h.sitemapService.BuildSitemap(c.Context())
	if err != nil {
		logconfig.Log.Error("Sitemap generation failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	c.Set("Content-Type", "application/xml; charset=utf-8")
	return c.Send(out)
}

func (h *SitemapHandler) Robots(c *fiber.Ctx) error {
	base := envconfig.String("APP_BASE_URL", "https://thewellingtonoffices.com")
	c.Set("Content-Type", "text/plain; charset=utf-8")
	return c.SendString("User-agent: *\nDisallow: /panel\n\nSitemap: " + base + "/sitemap.xml\n")
}

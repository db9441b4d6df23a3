package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

func (h *DashboardHandler) Index(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/dashboard", "layouts/panel", fiber.Map{
		"Title": "Bảng điều khiển",
	}, http.StatusOK)
}

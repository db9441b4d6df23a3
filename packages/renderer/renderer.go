package renderer

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"

	"github.com/gofiber/fiber/v2"
)

// Render wraps c.Render with the layout and the flash messages every page
// shows.
func Render(c *fiber.Ctx, view, layout string, data fiber.Map, status int) error {
	if data == nil {
		data = fiber.Map{}
	}
	data["Flash"] = flashmessages.GetFlashMessages(c)
	return c.Status(status).Render(view, data, layout)
}

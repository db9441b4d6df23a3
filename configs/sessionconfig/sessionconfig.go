package sessionconfig

import (
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

var store *session.Store

func InitSession() {
	store = session.New(session.Config{
		Expiration:     24 * time.Hour,
		KeyLookup:      "cookie:wellington_session",
		CookieHTTPOnly: true,
		CookieSecure:   envconfig.IsProd(),
		CookieSameSite: "Lax",
	})
}

func SessionStart(c *fiber.Ctx) (*session.Session, error) {
	return store.Get(c)
}

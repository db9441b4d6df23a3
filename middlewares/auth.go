package middlewares

import (
	"crypto/subtle"
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/sessionconfig"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AuthMiddleware gates the admin panel behind the session login.
func AuthMiddleware(c *fiber.Ctx) error {
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return c.Redirect("/panel/login")
	}

	userID, ok := sess.Get("admin_id").(uint)
	if !ok || userID == 0 {
		return c.Redirect("/panel/login")
	}

	c.Locals("adminID", userID)
	return c.Next()
}

// GuestMiddleware keeps logged-in admins away from the login page.
func GuestMiddleware(c *fiber.Ctx) error {
	sess, err := sessionconfig.SessionStart(c)
	if err == nil {
		if userID, ok := sess.Get("admin_id").(uint); ok && userID != 0 {
			return c.Redirect("/panel")
		}
	}
	return c.Next()
}

// CronTokenMiddleware authorizes the external cron trigger with the
// configured bearer secret.
func CronTokenMiddleware(c *fiber.Ctx) error {
	secret := envconfig.String("CRON_SECRET", "")
	if secret == "" {
		logconfig.Log.Warn("CRON_SECRET not configured, cron endpoint disabled")
		return c.SendStatus(fiber.StatusNotFound)
	}

	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
		logconfig.Log.Warn("Cron trigger rejected", zap.String("ip", getRealIP(c)))
		return c.SendStatus(fiber.StatusUnauthorized)
	}
	return c.Next()
}

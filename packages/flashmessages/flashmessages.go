package flashmessages

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/sessionconfig"

	"github.com/gofiber/fiber/v2"
)

const (
	FlashErrorKey   = "error"
	FlashSuccessKey = "success"
)

func SetFlashMessage(c *fiber.Ctx, key, message string) {
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return
	}
	sess.Set("flash_"+key, message)
	_ = sess.Save()
}

// GetFlashMessages reads and clears both flash slots for rendering.
func GetFlashMessages(c *fiber.Ctx) map[string]string {
	out := make(map[string]string)

	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return out
	}

	for _, key := range []string{FlashErrorKey, FlashSuccessKey} {
		if v, ok := sess.Get("flash_" + key).(string); ok && v != "" {
			out[key] = v
			sess.Delete("flash_" + key)
		}
	}
	_ = sess.Save()
	return out
}

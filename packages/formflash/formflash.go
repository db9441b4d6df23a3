package formflash

import (
	"encoding/json"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/sessionconfig"

	"github.com/gofiber/fiber/v2"
)

// Form state carried across a redirect-after-error: the submitted values and
// the per-field validation messages.

const (
	dataKey   = "formflash_data"
	errorsKey = "formflash_errors"
)

func SetData(c *fiber.Ctx, data map[string]string) {
	set(c, dataKey, data)
}

func SetValidationErrors(c *fiber.Ctx, errors map[string]string) {
	set(c, errorsKey, errors)
}

func GetData(c *fiber.Ctx) map[string]string {
	return pop(c, dataKey)
}

func GetValidationErrors(c *fiber.Ctx) map[string]string {
	return pop(c, errorsKey)
}

func set(c *fiber.Ctx, key string, values map[string]string) {
	if len(values) == 0 {
		return
	}
	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return
	}
	sess.Set(key, string(raw))
	_ = sess.Save()
}

func pop(c *fiber.Ctx, key string) map[string]string {
	out := make(map[string]string)

	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		return out
	}

	raw, ok := sess.Get(key).(string)
	if !ok || raw == "" {
		return out
	}
	sess.Delete(key)
	_ = sess.Save()

	_ = json.Unmarshal([]byte(raw), &out)
	return out
}

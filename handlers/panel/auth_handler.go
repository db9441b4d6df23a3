package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/sessionconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/formflash"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type AuthHandler struct {
	authService services.IAuthService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{authService: services.NewAuthService()}
}

func (h *AuthHandler) ShowLogin(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/login", "layouts/panel_auth", fiber.Map{
		"Title":  "Đăng nhập",
		"Form":   formflash.GetData(c),
		"Errors": formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateLoginRequest(c)
	if err != nil {
		formflash.SetData(c, map[string]string{"email": req.Email})
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/login")
	}

	user, err := h.authService.Authenticate(c.Context(), req.Email, req.Password)
	if err != nil {
		formflash.SetData(c, map[string]string{"email": req.Email})
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/login")
	}

	sess, err := sessionconfig.SessionStart(c)
	if err != nil {
		logconfig.Log.Error("Session could not be started on login", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	if err := sess.Regenerate(); err != nil {
		logconfig.Log.Warn("Session could not be regenerated", zap.Error(err))
	}
	sess.Set("admin_id", user.ID)
	if err := sess.Save(); err != nil {
		logconfig.Log.Error("Session could not be saved on login", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return c.Redirect("/panel")
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if sess, err := sessionconfig.SessionStart(c); err == nil {
		_ = sess.Destroy()
	}
	return c.Redirect("/panel/login")
}

package handlers

import (
	"fmt"
	"html"
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/formflash"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type ContactHandler struct {
	mailService services.IMailService
}

func NewContactHandler() *ContactHandler {
	return &ContactHandler{mailService: services.NewMailService()}
}

func (h *ContactHandler) Show(c *fiber.Ctx) error {
	return renderer.Render(c, "website/contact", "layouts/website", fiber.Map{
		"Title":  "Liên hệ",
		"Form":   formflash.GetData(c),
		"Errors": formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateContactRequest(c)
	if err != nil {
		formflash.SetData(c, map[string]string{
			"name":    req.Name,
			"email":   req.Email,
			"phone":   req.Phone,
			"message": req.Message,
		})
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/lien-he")
	}

	body := fmt.Sprintf(
		"<p><b>Họ tên:</b> %s</p><p><b>Email:</b> %s</p><p><b>Điện thoại:</b> %s</p><p>%s</p>",
		html.EscapeString(req.Name),
		html.EscapeString(req.Email),
		html.EscapeString(req.Phone),
		html.EscapeString(req.Message),
	)

	to := envconfig.String("CONTACT_RECIPIENT", "info@thewellingtonoffices.com")
	if err := h.mailService.SendMail(to, "Liên hệ từ website: "+req.Name, body); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể gửi liên hệ, vui lòng thử lại sau")
		return c.Redirect("/lien-he")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã gửi liên hệ thành công")
	return c.Redirect("/lien-he")
}

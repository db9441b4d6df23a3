package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/formflash"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type OfficeHandler struct {
	officeService services.IOfficeService
}

func NewOfficeHandler() *OfficeHandler {
	return &OfficeHandler{officeService: services.NewOfficeService()}
}

func (h *OfficeHandler) List(c *fiber.Ctx) error {
	params := requests.ParseOfficeListParams(c)

	result, err := h.officeService.GetAllOffices(c.Context(), params)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/offices/index", "layouts/panel", fiber.Map{
		"Title":  "Quản lý văn phòng",
		"Result": result,
		"Params": params,
	}, http.StatusOK)
}

func (h *OfficeHandler) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidateOfficeRequest(c)
	if err != nil {
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/offices")
	}

	if err := h.officeService.CreateOffice(c.Context(), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/offices")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã thêm văn phòng")
	return c.Redirect("/panel/offices")
}

func (h *OfficeHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	req, fieldErrors, err := requests.ParseAndValidateOfficeRequest(c)
	if err != nil {
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/offices")
	}

	if err := h.officeService.UpdateOffice(c.Context(), uint(id), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/offices")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã cập nhật văn phòng")
	return c.Redirect("/panel/offices")
}

func (h *OfficeHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := h.officeService.DeleteOffice(c.Context(), uint(id)); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể xóa văn phòng")
	} else {
		flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã xóa văn phòng")
	}
	return c.Redirect("/panel/offices")
}

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

type PropertyHandler struct {
	propertyService services.IPropertyService
	locationService services.ILocationService
}

func NewPropertyHandler() *PropertyHandler {
	return &PropertyHandler{
		propertyService: services.NewPropertyService(),
		locationService: services.NewLocationService(),
	}
}

func (h *PropertyHandler) List(c *fiber.Ctx) error {
	params := requests.ParsePropertyListParams(c)

	result, err := h.propertyService.GetAllProperties(c.Context(), params)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/properties/index", "layouts/panel", fiber.Map{
		"Title":  "Quản lý tòa nhà",
		"Result": result,
		"Params": params,
	}, http.StatusOK)
}

func (h *PropertyHandler) ShowCreate(c *fiber.Ctx) error {
	districts, err := h.locationService.LoadDistricts(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/properties/create", "layouts/panel", fiber.Map{
		"Title":     "Thêm tòa nhà",
		"Districts": districts,
		"Form":      formflash.GetData(c),
		"Errors":    formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidatePropertyRequest(c)
	if err != nil {
		formflash.SetData(c, map[string]string{"name": req.Name, "slug": req.Slug})
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/properties/create")
	}

	if err := h.propertyService.CreateProperty(c.Context(), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/properties/create")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã thêm tòa nhà")
	return c.Redirect("/panel/properties")
}

func (h *PropertyHandler) ShowEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	property, err := h.propertyService.GetPropertyByID(c.Context(), uint(id))
	if err != nil {
		return fiber.ErrNotFound
	}

	districts, err := h.locationService.LoadDistricts(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/properties/edit", "layouts/panel", fiber.Map{
		"Title":     "Sửa tòa nhà",
		"Property":  property,
		"Districts": districts,
		"Errors":    formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	req, fieldErrors, err := requests.ParseAndValidatePropertyRequest(c)
	if err != nil {
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/properties/" + c.Params("id") + "/edit")
	}

	if err := h.propertyService.UpdateProperty(c.Context(), uint(id), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/properties/" + c.Params("id") + "/edit")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã cập nhật tòa nhà")
	return c.Redirect("/panel/properties")
}

func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := h.propertyService.DeleteProperty(c.Context(), uint(id)); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể xóa tòa nhà")
	} else {
		flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã xóa tòa nhà")
	}
	return c.Redirect("/panel/properties")
}

package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type OfficeHandler struct {
	officeService   services.IOfficeService
	locationService services.ILocationService
}

func NewOfficeHandler() *OfficeHandler {
	return &OfficeHandler{
		officeService:   services.NewOfficeService(),
		locationService: services.NewLocationService(),
	}
}

func (h *OfficeHandler) List(c *fiber.Ctx) error {
	params := requests.ParseOfficeListParams(c)

	result, err := h.officeService.GetAllOffices(c.Context(), params)
	if err != nil {
		logconfig.Log.Error("Office listing failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	districts, err := h.locationService.LoadDistricts(c.Context())
	if err != nil {
		logconfig.Log.Error("Districts could not be loaded for filter", zap.Error(err))
	}

	return renderer.Render(c, "website/offices", "layouts/website", fiber.Map{
		"Title":     "Văn phòng cho thuê",
		"Result":    result,
		"Districts": districts,
		"Params":    params,
	}, http.StatusOK)
}

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

// List renders the property search page. The district/ward filters come from
// the dual-taxonomy selector; malformed filter values have already been
// normalized to "no constraint" during parsing.
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	params := requests.ParsePropertyListParams(c)

	result, err := h.propertyService.GetAllProperties(c.Context(), params)
	if err != nil {
		logconfig.Log.Error("Property listing failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	districts, err := h.locationService.LoadDistricts(c.Context())
	if err != nil {
		logconfig.Log.Error("Districts could not be loaded for filter", zap.Error(err))
	}

	return renderer.Render(c, "website/properties", "layouts/website", fiber.Map{
		"Title":     "Tòa nhà văn phòng",
		"Result":    result,
		"Districts": districts,
		"Params":    params,
	}, http.StatusOK)
}

func (h *PropertyHandler) Detail(c *fiber.Ctx) error {
	property, err := h.propertyService.GetPropertyBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return fiber.ErrNotFound
	}

	return renderer.Render(c, "website/property_detail", "layouts/website", fiber.Map{
		"Title":    property.Name,
		"Property": property,
	}, http.StatusOK)
}

package handlers

import (
	"context"
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type HomeHandler struct {
	sectionService  services.IHomeSectionService
	propertyService services.IPropertyService
	postService     services.IPostService
}

func NewHomeHandler() *HomeHandler {
	return &HomeHandler{
		sectionService:  services.NewHomeSectionService(),
		propertyService: services.NewPropertyService(),
		postService:     services.NewPostService(),
	}
}

// SectionView is a home-page block resolved for rendering.
type SectionView struct {
	Kind       string
	Title      string
	Properties []models.Property
	Posts      []models.Post
	Markup     string
}

func (h *HomeHandler) Index(c *fiber.Ctx) error {
	sections, err := h.sectionService.GetSections(c.Context())
	if err != nil {
		logconfig.Log.Error("Home sections could not be loaded", zap.Error(err))
		sections = nil
	}

	views := h.resolveSections(c.Context(), sections)

	return renderer.Render(c, "website/home", "layouts/website", fiber.Map{
		"Title":    "Văn phòng cho thuê TP.HCM",
		"Sections": views,
	}, http.StatusOK)
}

// resolveSections loads each section's referenced content. A corrupt payload
// drops the section; a failed content fetch logs and renders the section
// empty rather than taking the whole page down.
func (h *HomeHandler) resolveSections(ctx context.Context, sections []models.HomeSection) []SectionView {
	var views []SectionView
	for _, sec := range sections {
		payload, err := sec.DecodePayload()
		if err != nil {
			logconfig.Log.Warn("Home section payload corrupt, skipped",
				zap.Uint("section_id", sec.ID),
				zap.Error(err),
			)
			continue
		}

		view := SectionView{Kind: sec.Kind, Title: sec.Title, Markup: payload.Markup}
		switch sec.Kind {
		case models.SectionKindProperty:
			view.Properties, err = h.propertyService.GetPropertiesByIDs(ctx, payload.PropertyIDs)
			if err != nil {
				logconfig.Log.Error("Home section properties could not be loaded",
					zap.Uint("section_id", sec.ID),
					zap.Error(err),
				)
			}
		case models.SectionKindPost:
			view.Posts, err = h.postService.GetPostsByIDs(ctx, payload.PostIDs)
			if err != nil {
				logconfig.Log.Error("Home section posts could not be loaded",
					zap.Uint("section_id", sec.ID),
					zap.Error(err),
				)
			}
		}
		views = append(views, view)
	}
	return views
}

package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type HomeSectionHandler struct {
	sectionService services.IHomeSectionService
}

func NewHomeSectionHandler() *HomeSectionHandler {
	return &HomeSectionHandler{sectionService: services.NewHomeSectionService()}
}

func (h *HomeSectionHandler) List(c *fiber.Ctx) error {
	sections, err := h.sectionService.GetSections(c.Context())
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/home_sections/index", "layouts/panel", fiber.Map{
		"Title":    "Quản lý trang chủ",
		"Sections": sections,
	}, http.StatusOK)
}

// Save accepts one section in the closed variant shape: kind decides which
// payload field the form's value column fills.
func (h *HomeSectionHandler) Save(c *fiber.Ctx) error {
	kind := c.FormValue("kind")
	if kind != models.SectionKindProperty && kind != models.SectionKindPost && kind != models.SectionKindMarkup {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Loại khối không hợp lệ")
		return c.Redirect("/panel/home-sections")
	}

	section := models.HomeSection{
		Kind:     kind,
		Title:    strings.TrimSpace(c.FormValue("title")),
		Position: c.QueryInt("position", 0),
	}
	section.IsActive = true

	if id, err := c.ParamsInt("id"); err == nil && id > 0 {
		section.ID = uint(id)
	}
	if pos, err := strconv.Atoi(c.FormValue("position")); err == nil {
		section.Position = pos
	}

	payload := models.SectionPayload{}
	switch kind {
	case models.SectionKindProperty:
		payload.PropertyIDs = parseIDList(c.FormValue("property_ids"))
	case models.SectionKindPost:
		payload.PostIDs = parseIDList(c.FormValue("post_ids"))
	case models.SectionKindMarkup:
		payload.Markup = c.FormValue("markup")
	}
	if err := section.EncodePayload(payload); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Nội dung khối không hợp lệ")
		return c.Redirect("/panel/home-sections")
	}

	if err := h.sectionService.SaveSection(c.Context(), &section); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể lưu khối nội dung")
		return c.Redirect("/panel/home-sections")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã lưu khối nội dung")
	return c.Redirect("/panel/home-sections")
}

func (h *HomeSectionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := h.sectionService.DeleteSection(c.Context(), uint(id)); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể xóa khối nội dung")
	} else {
		flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã xóa khối nội dung")
	}
	return c.Redirect("/panel/home-sections")
}

func parseIDList(raw string) []uint {
	var ids []uint
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if v, err := strconv.ParseUint(part, 10, 32); err == nil && v > 0 {
			ids = append(ids, uint(v))
		}
	}
	return ids
}

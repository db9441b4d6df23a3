package handlers

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type LocationHandler struct {
	locationService services.ILocationService
}

func NewLocationHandler() *LocationHandler {
	return &LocationHandler{locationService: services.NewLocationService()}
}

type wardOption struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	DistrictID uint   `json:"district_id"`
}

type locationOptionsResponse struct {
	SelectedWardID    *uint        `json:"selected_ward_id"`
	SelectedOldWardID *uint        `json:"selected_old_ward_id"`
	WardOptions       []wardOption `json:"ward_options"`
	OldWardOptions    []wardOption `json:"old_ward_options"`
}

// Options powers the property form's paired ward selects. The client sends
// both current selections plus which side just changed; the selector replays
// the unchanged side first so reconciliation reacts to the edit.
func (h *LocationHandler) Options(c *fiber.Ctx) error {
	selector, err := h.locationService.NewSelector(c.Context())
	if err != nil {
		logconfig.Log.Error("Ward selector could not be built", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	wardID := uint(c.QueryInt("ward_id", 0))
	oldWardID := uint(c.QueryInt("old_ward_id", 0))
	changed := c.Query("changed")

	apply := func(side string) {
		switch side {
		case "new":
			if wardID != 0 {
				selector.SelectNew(wardID)
			} else {
				selector.ClearNew()
			}
		case "old":
			if oldWardID != 0 {
				selector.SelectOld(oldWardID)
			} else {
				selector.ClearOld()
			}
		}
	}

	if changed == "old" {
		apply("new")
		apply("old")
	} else {
		apply("old")
		apply("new")
	}

	resp := locationOptionsResponse{}
	if w := selector.SelectedNew(); w != nil {
		resp.SelectedWardID = &w.ID
	}
	if o := selector.SelectedOld(); o != nil {
		resp.SelectedOldWardID = &o.ID
	}
	for _, w := range selector.NewCandidates(c.Query("q_new")) {
		resp.WardOptions = append(resp.WardOptions, wardOption{ID: w.ID, Name: w.Name, DistrictID: w.DistrictID})
	}
	for _, o := range selector.OldCandidates(c.Query("q_old")) {
		resp.OldWardOptions = append(resp.OldWardOptions, wardOption{ID: o.ID, Name: o.Name, DistrictID: o.DistrictID})
	}

	return c.JSON(resp)
}

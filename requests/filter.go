package requests

import (
	"strconv"
	"strings"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// Listing filters are lenient by contract: a non-numeric bound or an
// unrecognized enum value means "no constraint on that axis", never an error.

type PropertyListParams struct {
	ListParams

	DistrictID *uint
	WardID     *uint
	OldWardID  *uint

	AreaMin  *float64
	AreaMax  *float64
	PriceMin *float64
	PriceMax *float64

	Grade       string
	ListingType string
	Keyword     string
}

func ParsePropertyListParams(c *fiber.Ctx) PropertyListParams {
	return PropertyListParams{
		ListParams:  ParseListParams(c),
		DistrictID:  optionalUint(c.Query("district_id")),
		WardID:      optionalUint(c.Query("ward_id")),
		OldWardID:   optionalUint(c.Query("old_ward_id")),
		AreaMin:     optionalFloat(c.Query("area_min")),
		AreaMax:     optionalFloat(c.Query("area_max")),
		PriceMin:    optionalFloat(c.Query("price_min")),
		PriceMax:    optionalFloat(c.Query("price_max")),
		Grade:       oneOf(c.Query("grade"), models.PropertyGrades),
		ListingType: oneOf(c.Query("listing_type"), models.PropertyListingTypes),
		Keyword:     strings.TrimSpace(c.Query("q")),
	}
}

type OfficeListParams struct {
	ListParams

	DistrictID *uint

	AreaMin  *float64
	AreaMax  *float64
	PriceMin *float64
	PriceMax *float64
}

func ParseOfficeListParams(c *fiber.Ctx) OfficeListParams {
	return OfficeListParams{
		ListParams: ParseListParams(c),
		DistrictID: optionalUint(c.Query("district_id")),
		AreaMin:    optionalFloat(c.Query("area_min")),
		AreaMax:    optionalFloat(c.Query("area_max")),
		PriceMin:   optionalFloat(c.Query("price_min")),
		PriceMax:   optionalFloat(c.Query("price_max")),
	}
}

func optionalFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

func optionalUint(raw string) *uint {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || v == 0 {
		return nil
	}
	u := uint(v)
	return &u
}

func oneOf(raw string, allowed []string) string {
	raw = strings.TrimSpace(raw)
	for _, a := range allowed {
		if raw == a {
			return raw
		}
	}
	return ""
}

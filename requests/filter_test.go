package requests

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parsePropertyParams(t *testing.T, target string) PropertyListParams {
	t.Helper()
	app := fiber.New()
	var got PropertyListParams
	app.Get("/van-phong", func(c *fiber.Ctx) error {
		got = ParsePropertyListParams(c)
		return nil
	})
	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	return got
}

func TestParsePropertyListParamsLenientBounds(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   *float64
	}{
		{"valid number", "/van-phong?area_min=120.5", ptr(120.5)},
		{"non-numeric input dropped", "/van-phong?area_min=abc", nil},
		{"negative input dropped", "/van-phong?area_min=-5", nil},
		{"empty input dropped", "/van-phong?area_min=", nil},
		{"whitespace trimmed", "/van-phong?area_min=%20%2080%20", ptr(80.0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parsePropertyParams(t, tc.target)
			if tc.want == nil {
				assert.Nil(t, got.AreaMin)
			} else {
				require.NotNil(t, got.AreaMin)
				assert.Equal(t, *tc.want, *got.AreaMin)
			}
		})
	}
}

func TestParsePropertyListParamsEnumsAreClosed(t *testing.T) {
	got := parsePropertyParams(t, "/van-phong?grade=A&listing_type=retail")
	assert.Equal(t, "A", got.Grade)
	assert.Equal(t, "retail", got.ListingType)

	got = parsePropertyParams(t, "/van-phong?grade=Z&listing_type=warehouse")
	assert.Empty(t, got.Grade)
	assert.Empty(t, got.ListingType)

	// Matching is exact, not case-folded.
	got = parsePropertyParams(t, "/van-phong?grade=a")
	assert.Empty(t, got.Grade)
}

func TestParsePropertyListParamsIDs(t *testing.T) {
	got := parsePropertyParams(t, "/van-phong?district_id=7&ward_id=abc&old_ward_id=0")
	require.NotNil(t, got.DistrictID)
	assert.Equal(t, uint(7), *got.DistrictID)
	assert.Nil(t, got.WardID)
	assert.Nil(t, got.OldWardID)
}

func TestParseListParamsClampsPage(t *testing.T) {
	got := parsePropertyParams(t, "/van-phong?page=-3")
	assert.Equal(t, 1, got.Page)
	assert.Equal(t, DefaultPerPage, got.PerPage)

	got = parsePropertyParams(t, "/van-phong?page=4")
	assert.Equal(t, 4, got.Page)
	assert.Equal(t, 36, got.Offset())
}

func ptr(v float64) *float64 {
	return &v
}

package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PropertyRequest struct {
	Name        string  `form:"name" validate:"required,min=3,max=150"`
	Slug        string  `form:"slug" validate:"required,min=3,max=180"`
	Address     string  `form:"address" validate:"max=255"`
	Grade       string  `form:"grade" validate:"omitempty,oneof=A B C"`
	ListingType string  `form:"listing_type" validate:"omitempty,oneof=office retail whole-building"`
	FloorArea   float64 `form:"floor_area" validate:"omitempty,gt=0"`
	PricePerM2  float64 `form:"price_per_m2" validate:"omitempty,gt=0"`
	Description string  `form:"description"`
	CoverImage  string  `form:"cover_image" validate:"omitempty,url"`
	WardID      *uint   `form:"ward_id"`
	OldWardID   *uint   `form:"old_ward_id"`
}

func ParseAndValidatePropertyRequest(c *fiber.Ctx) (PropertyRequest, map[string]string, error) {
	var req PropertyRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("định dạng yêu cầu không hợp lệ")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return req, GetPropertyValidationErrors(err), errors.New("vui lòng kiểm tra thông tin tòa nhà")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))
	req.Address = strings.TrimSpace(req.Address)

	return req, make(map[string]string), nil
}

func GetPropertyValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Name_required":     "Tên tòa nhà là bắt buộc",
		"Name_min":          "Tên tòa nhà phải có ít nhất 3 ký tự",
		"Slug_required":     "Đường dẫn là bắt buộc",
		"Slug_min":          "Đường dẫn phải có ít nhất 3 ký tự",
		"Grade_oneof":       "Hạng tòa nhà không hợp lệ",
		"ListingType_oneof": "Loại hình không hợp lệ",
		"FloorArea_gt":      "Diện tích sàn phải lớn hơn 0",
		"PricePerM2_gt":     "Giá thuê phải lớn hơn 0",
		"CoverImage_url":    "Ảnh đại diện phải là một URL hợp lệ",
	}
	return CommonValidationErrors(err, errorMessages)
}

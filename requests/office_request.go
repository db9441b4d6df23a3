package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type OfficeRequest struct {
	PropertyID uint    `form:"property_id" validate:"required"`
	Name       string  `form:"name" validate:"required,min=2,max=150"`
	Floor      string  `form:"floor" validate:"max=30"`
	Area       float64 `form:"area" validate:"required,gt=0"`
	PricePerM2 float64 `form:"price_per_m2" validate:"required,gt=0"`
}

func ParseAndValidateOfficeRequest(c *fiber.Ctx) (OfficeRequest, map[string]string, error) {
	var req OfficeRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("định dạng yêu cầu không hợp lệ")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return req, GetOfficeValidationErrors(err), errors.New("vui lòng kiểm tra thông tin văn phòng")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Floor = strings.TrimSpace(req.Floor)

	return req, make(map[string]string), nil
}

func GetOfficeValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"PropertyID_required": "Tòa nhà là bắt buộc",
		"Name_required":       "Tên văn phòng là bắt buộc",
		"Name_min":            "Tên văn phòng phải có ít nhất 2 ký tự",
		"Area_required":       "Diện tích là bắt buộc",
		"Area_gt":             "Diện tích phải lớn hơn 0",
		"PricePerM2_required": "Giá thuê là bắt buộc",
		"PricePerM2_gt":       "Giá thuê phải lớn hơn 0",
	}
	return CommonValidationErrors(err, errorMessages)
}

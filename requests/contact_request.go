package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type ContactRequest struct {
	Name    string `form:"name" validate:"required,min=2,max=100"`
	Email   string `form:"email" validate:"required,email"`
	Phone   string `form:"phone" validate:"omitempty,min=8,max=15"`
	Message string `form:"message" validate:"required,min=10,max=2000"`
}

func ParseAndValidateContactRequest(c *fiber.Ctx) (ContactRequest, map[string]string, error) {
	var req ContactRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("định dạng yêu cầu không hợp lệ")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return req, GetContactValidationErrors(err), errors.New("vui lòng kiểm tra thông tin liên hệ")
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Phone = strings.TrimSpace(req.Phone)

	return req, make(map[string]string), nil
}

func GetContactValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Name_required":    "Họ tên là bắt buộc",
		"Name_min":         "Họ tên phải có ít nhất 2 ký tự",
		"Email_required":   "Email là bắt buộc",
		"Email_email":      "Email không hợp lệ",
		"Phone_min":        "Số điện thoại không hợp lệ",
		"Phone_max":        "Số điện thoại không hợp lệ",
		"Message_required": "Nội dung là bắt buộc",
		"Message_min":      "Nội dung phải có ít nhất 10 ký tự",
	}
	return CommonValidationErrors(err, errorMessages)
}

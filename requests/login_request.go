package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
}

func ParseAndValidateLoginRequest(c *fiber.Ctx) (LoginRequest, map[string]string, error) {
	var req LoginRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("định dạng yêu cầu không hợp lệ")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return req, GetLoginValidationErrors(err), errors.New("vui lòng kiểm tra thông tin đăng nhập")
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	return req, make(map[string]string), nil
}

func GetLoginValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Email_required":    "Email là bắt buộc",
		"Email_email":       "Email không hợp lệ",
		"Password_required": "Mật khẩu là bắt buộc",
		"Password_min":      "Mật khẩu phải có ít nhất 8 ký tự",
	}
	return CommonValidationErrors(err, errorMessages)
}

package requests

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type PostRequest struct {
	Title      string `form:"title" validate:"required,min=3,max=200"`
	Slug       string `form:"slug" validate:"required,min=3,max=220"`
	Summary    string `form:"summary" validate:"max=500"`
	Content    string `form:"content" validate:"required"`
	CoverImage string `form:"cover_image" validate:"omitempty,url"`
	Published  bool   `form:"published"`
}

func ParseAndValidatePostRequest(c *fiber.Ctx) (PostRequest, map[string]string, error) {
	var req PostRequest

	if err := c.BodyParser(&req); err != nil {
		return req, make(map[string]string), errors.New("định dạng yêu cầu không hợp lệ")
	}

	validate := validator.New()
	if err := validate.Struct(req); err != nil {
		return req, GetPostValidationErrors(err), errors.New("vui lòng kiểm tra nội dung bài viết")
	}

	req.Title = strings.TrimSpace(req.Title)
	req.Slug = strings.ToLower(strings.TrimSpace(req.Slug))

	return req, make(map[string]string), nil
}

func GetPostValidationErrors(err error) map[string]string {
	errorMessages := map[string]string{
		"Title_required":   "Tiêu đề là bắt buộc",
		"Title_min":        "Tiêu đề phải có ít nhất 3 ký tự",
		"Slug_required":    "Đường dẫn là bắt buộc",
		"Slug_min":         "Đường dẫn phải có ít nhất 3 ký tự",
		"Content_required": "Nội dung là bắt buộc",
		"CoverImage_url":   "Ảnh đại diện phải là một URL hợp lệ",
	}
	return CommonValidationErrors(err, errorMessages)
}

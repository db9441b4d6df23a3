package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/flashmessages"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/formflash"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type PostHandler struct {
	postService services.IPostService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{postService: services.NewPostService()}
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	params := requests.ParseListParams(c)

	result, err := h.postService.GetAllPosts(c.Context(), params)
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "panel/posts/index", "layouts/panel", fiber.Map{
		"Title":  "Quản lý bài viết",
		"Result": result,
	}, http.StatusOK)
}

func (h *PostHandler) ShowCreate(c *fiber.Ctx) error {
	return renderer.Render(c, "panel/posts/create", "layouts/panel", fiber.Map{
		"Title":  "Thêm bài viết",
		"Form":   formflash.GetData(c),
		"Errors": formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *PostHandler) Create(c *fiber.Ctx) error {
	req, fieldErrors, err := requests.ParseAndValidatePostRequest(c)
	if err != nil {
		formflash.SetData(c, map[string]string{"title": req.Title, "slug": req.Slug})
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/posts/create")
	}

	if err := h.postService.CreatePost(c.Context(), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/posts/create")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã thêm bài viết")
	return c.Redirect("/panel/posts")
}

func (h *PostHandler) ShowEdit(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	post, err := h.postService.GetPostByID(c.Context(), uint(id))
	if err != nil {
		return fiber.ErrNotFound
	}

	return renderer.Render(c, "panel/posts/edit", "layouts/panel", fiber.Map{
		"Title":  "Sửa bài viết",
		"Post":   post,
		"Errors": formflash.GetValidationErrors(c),
	}, http.StatusOK)
}

func (h *PostHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	req, fieldErrors, err := requests.ParseAndValidatePostRequest(c)
	if err != nil {
		formflash.SetValidationErrors(c, fieldErrors)
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/posts/" + c.Params("id") + "/edit")
	}

	if err := h.postService.UpdatePost(c.Context(), uint(id), req); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, err.Error())
		return c.Redirect("/panel/posts/" + c.Params("id") + "/edit")
	}

	flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã cập nhật bài viết")
	return c.Redirect("/panel/posts")
}

func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return fiber.ErrNotFound
	}

	if err := h.postService.DeletePost(c.Context(), uint(id)); err != nil {
		flashmessages.SetFlashMessage(c, flashmessages.FlashErrorKey, "Không thể xóa bài viết")
	} else {
		flashmessages.SetFlashMessage(c, flashmessages.FlashSuccessKey, "Đã xóa bài viết")
	}
	return c.Redirect("/panel/posts")
}

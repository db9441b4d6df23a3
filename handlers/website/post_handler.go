package handlers

import (
	"net/http"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/packages/renderer"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/requests"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type PostHandler struct {
	postService services.IPostService
}

func NewPostHandler() *PostHandler {
	return &PostHandler{postService: services.NewPostService()}
}

func (h *PostHandler) List(c *fiber.Ctx) error {
	params := requests.ParseListParams(c)

	result, err := h.postService.GetPublishedPosts(c.Context(), params)
	if err != nil {
		logconfig.Log.Error("Post listing failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}

	return renderer.Render(c, "website/posts", "layouts/website", fiber.Map{
		"Title":  "Tin tức",
		"Result": result,
	}, http.StatusOK)
}

func (h *PostHandler) Detail(c *fiber.Ctx) error {
	post, err := h.postService.GetPostBySlug(c.Context(), c.Params("slug"))
	if err != nil || post.PublishedAt == nil {
		return fiber.ErrNotFound
	}

	return renderer.Render(c, "website/post_detail", "layouts/website", fiber.Map{
		"Title": post.Title,
		"Post":  post,
	}, http.StatusOK)
}

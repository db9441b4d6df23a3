package requests

import "github.com/gofiber/fiber/v2"

// DefaultPerPage is the fixed listing page size.
const DefaultPerPage = 12

type ListParams struct {
	Page    int
	PerPage int
}

func ParseListParams(c *fiber.Ctx) ListParams {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	return ListParams{Page: page, PerPage: DefaultPerPage}
}

func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

type PaginatedResult struct {
	Items      interface{} `json:"items"`
	TotalCount int64       `json:"total_count"`
	Page       int         `json:"page"`
	PerPage    int         `json:"per_page"`
	TotalPages int         `json:"total_pages"`
}

func CreatePaginatedResult(items interface{}, totalCount int64, page, perPage int) *PaginatedResult {
	totalPages := 0
	if perPage > 0 {
		totalPages = int((totalCount + int64(perPage) - 1) / int64(perPage))
	}
	return &PaginatedResult{
		Items:      items,
		TotalCount: totalCount,
		Page:       page,
		PerPage:    perPage,
		TotalPages: totalPages,
	}
}

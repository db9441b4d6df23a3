package handlers

import (
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CleanupHandler struct {
	cleanupService services.ICleanupService
}

func NewCleanupHandler(cleanupService services.ICleanupService) *CleanupHandler {
	return &CleanupHandler{cleanupService: cleanupService}
}

// Run is the bearer-token cron trigger. It responds with the reconciliation
// report; per-item failures are inside the report, not an error status.
func (h *CleanupHandler) Run(c *fiber.Ctx) error {
	report, err := h.cleanupService.ReconcileImages(c.Context())
	if err != nil {
		logconfig.Log.Error("Image reconciliation failed", zap.Error(err))
		return fiber.ErrInternalServerError
	}
	return c.JSON(report)
}

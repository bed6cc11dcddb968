package snapshot_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Export(c *fiber.Ctx) error {
	data, err := ctrl.store.ExportData()
	if err != nil {
		slog.Error("Failed to export state", "error", err)
		return response.SendError(c, "Failed to export state")
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="cert-studio-export.json"`)
	return c.Send(data)
}

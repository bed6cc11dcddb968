package snapshot_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Import swaps the entire working state for the posted document. A document
// that fails to parse is rejected and the current state stays as-is.
func (ctrl *Controller) Import(c *fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return response.SendFailed(c, "Empty import document")
	}

	if err := ctrl.store.ImportData(body); err != nil {
		return response.SendFailed(c, "Malformed import document")
	}

	slog.Info("State imported")
	return response.SendSuccess(c, "State Imported")
}

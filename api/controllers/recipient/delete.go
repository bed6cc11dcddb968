package recipient_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/model/recipientModel"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Delete removes the recipient and cascades to every certificate issued to
// it in local state. Rows already persisted remotely are left in place.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	recipientId := c.Params("recipientId")

	ctrl.store.DeleteRecipient(recipientId)

	if ctrl.mirrorAttrs {
		if err := recipientModel.DeleteAttributes(recipientId); err != nil {
			slog.Warn("Recipient Delete attribute cleanup failed", "error", err, "recipient_id", recipientId)
		}
	}

	slog.Info("Recipient deleted", "recipient_id", recipientId)
	return response.SendSuccess(c, "Recipient Deleted")
}

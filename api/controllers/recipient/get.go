package recipient_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/model/recipientModel"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) GetAll(c *fiber.Ctx) error {
	return response.SendSuccess(c, "Recipient fetched", ctrl.store.Recipients())
}

// GetById returns the recipient, enriched with the mirrored attribute
// document when one exists.
func (ctrl *Controller) GetById(c *fiber.Ctx) error {
	recipientId := c.Params("recipientId")

	rcpt, found := ctrl.store.RecipientByID(recipientId)
	if !found {
		return response.SendNotFound(c, "Recipient not found")
	}

	result := fiber.Map{"recipient": rcpt}

	if ctrl.mirrorAttrs {
		doc, err := recipientModel.GetAttributes(recipientId)
		if err != nil {
			slog.Warn("Recipient GetById attribute lookup failed", "error", err, "recipient_id", recipientId)
		} else if doc != nil {
			result["mirroredAttributes"] = doc
		}
	}

	return response.SendSuccess(c, "Recipient fetched", result)
}

package recipient_controller

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/model/recipientModel"
	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Edit replaces the recipient wholesale; there is no partial merge.
func (ctrl *Controller) Edit(c *fiber.Ctx) error {
	recipientId := c.Params("recipientId")

	body := new(payload.UpdateRecipientPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	issueDate := time.Now()
	if body.IssueDate != nil {
		issueDate = *body.IssueDate
	}

	ctrl.store.UpdateRecipient(recipientId, store.Recipient{
		Name:             body.Name,
		Email:            body.Email,
		Course:           body.Course,
		ExternalID:       body.ExternalID,
		CustomAttributes: body.CustomAttributes,
		IssueDate:        issueDate,
	})

	if ctrl.mirrorAttrs {
		if err := recipientModel.MirrorAttributes(recipientId, body.Name, body.CustomAttributes); err != nil {
			slog.Warn("Recipient Edit attribute mirror failed", "error", err, "recipient_id", recipientId)
		}
	}

	return response.SendSuccess(c, "Recipient Updated")
}

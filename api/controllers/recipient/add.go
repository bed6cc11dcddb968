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

func (ctrl *Controller) Add(c *fiber.Ctx) error {
	body := new(payload.CreateRecipientPayload)

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

	id := ctrl.store.AddRecipient(store.Recipient{
		Name:             body.Name,
		Email:            body.Email,
		Course:           body.Course,
		ExternalID:       body.ExternalID,
		CustomAttributes: body.CustomAttributes,
		IssueDate:        issueDate,
	})

	if ctrl.mirrorAttrs && len(body.CustomAttributes) > 0 {
		if err := recipientModel.MirrorAttributes(id, body.Name, body.CustomAttributes); err != nil {
			slog.Warn("Recipient Add attribute mirror failed", "error", err, "recipient_id", id)
		}
	}

	slog.Info("Recipient created", "recipient_id", id, "name", body.Name)
	return response.SendSuccess(c, "Recipient Created", fiber.Map{"id": id})
}

package template_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/middleware"
	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Add(c *fiber.Ctx) error {
	body := new(payload.CreateTemplatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	id := ctrl.store.AddTemplate(store.Template{
		Name:          body.Name,
		BackgroundURL: body.BackgroundURL,
		Fields:        body.Fields,
	})

	userID, _ := middleware.GetUserFromContext(c)
	slog.Info("Template created", "template_id", id, "name", body.Name, "user_id", userID)
	return response.SendSuccess(c, "Template Created", fiber.Map{"id": id})
}

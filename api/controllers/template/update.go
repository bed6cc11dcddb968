package template_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Update replaces the template wholesale; the ID is preserved. Updating a
// template never touches certificates already issued from it.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	body := new(payload.UpdateTemplatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	ctrl.store.UpdateTemplate(templateId, store.Template{
		Name:          body.Name,
		BackgroundURL: body.BackgroundURL,
		Fields:        body.Fields,
	})

	return response.SendSuccess(c, "Template Updated")
}

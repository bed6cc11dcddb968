package template_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	ctrl.store.DeleteTemplate(templateId)

	slog.Info("Template deleted", "template_id", templateId)
	return response.SendSuccess(c, "Template Deleted")
}

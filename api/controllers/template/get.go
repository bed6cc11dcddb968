package template_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) GetAll(c *fiber.Ctx) error {
	return response.SendSuccess(c, "Template fetched", fiber.Map{
		"templates":         ctrl.store.Templates(),
		"currentTemplateId": ctrl.store.CurrentTemplateID(),
	})
}

func (ctrl *Controller) GetById(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	tpl, found := ctrl.store.TemplateByID(templateId)
	if !found {
		return response.SendNotFound(c, "Template not found")
	}

	return response.SendSuccess(c, "Template fetched", tpl)
}

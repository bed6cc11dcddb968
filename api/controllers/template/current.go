package template_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) GetCurrent(c *fiber.Ctx) error {
	id := ctrl.store.CurrentTemplateID()
	if id == "" {
		return response.SendNotFound(c, "No template selected")
	}

	tpl, found := ctrl.store.TemplateByID(id)
	if !found {
		return response.SendNotFound(c, "No template selected")
	}

	return response.SendSuccess(c, "Template fetched", tpl)
}

func (ctrl *Controller) SetCurrent(c *fiber.Ctx) error {
	templateId := c.Params("templateId")

	if _, found := ctrl.store.TemplateByID(templateId); !found {
		return response.SendNotFound(c, "Template not found")
	}

	ctrl.store.SetCurrentTemplate(templateId)

	return response.SendSuccess(c, "Current template updated")
}

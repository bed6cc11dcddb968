package certificate_controller

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Status reports the asynchronous pipeline outcome for a certificate issued
// in this process.
func (ctrl *Controller) Status(c *fiber.Ctx) error {
	code := c.Params("code")

	task, found := ctrl.issuer.TaskByCode(code)
	if !found {
		return response.SendNotFound(c, "No issuance task for this certificate")
	}

	if !task.Finished() {
		return response.SendSuccess(c, "Issuance in progress", fiber.Map{
			"code":     code,
			"finished": false,
		})
	}

	result := fiber.Map{
		"code":     code,
		"finished": true,
		"success":  true,
	}
	if err := task.Err(context.Background()); err != nil {
		result["success"] = false
		result["error"] = err.Error()
	}

	return response.SendSuccess(c, "Issuance finished", result)
}

package certificate_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) GetAll(c *fiber.Ctx) error {
	return response.SendSuccess(c, "Certificate fetched", ctrl.store.Certificates())
}

func (ctrl *Controller) GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	cert, found := ctrl.store.CertificateByCode(code)
	if !found {
		return response.SendNotFound(c, "Certificate not found")
	}

	return response.SendSuccess(c, "Certificate fetched", cert)
}

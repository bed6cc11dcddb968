package certificate_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Update applies a partial merge: only the fields present in the patch are
// replaced, unlike the wholesale template/recipient updates.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	code := c.Params("code")

	patch := new(store.CertificatePatch)
	if err := c.BodyParser(patch); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	ctrl.store.UpdateCertificate(code, *patch)

	return response.SendSuccess(c, "Certificate Updated")
}

package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Delete removes the certificate from local state and best-effort from the
// database; collections keep their embedded copies.
func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	code := c.Params("code")

	ctrl.store.DeleteCertificate(code)

	if err := ctrl.records.Delete(code); err != nil {
		slog.Warn("Certificate Delete record cleanup failed", "error", err, "code", code)
	}

	slog.Info("Certificate deleted", "code", code)
	return response.SendSuccess(c, "Certificate Deleted")
}

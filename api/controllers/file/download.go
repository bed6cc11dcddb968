package file_controller

import (
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Download streams the stored PDF as an attachment. The route is public so
// that links embedded in issued certificates keep working without a session.
func (ctrl *Controller) Download(c *fiber.Ctx) error {
	certificateCode := c.Params("certificateCode")

	key := storage.CertificateKey(certificateCode)

	data, err := ctrl.storage.Get(c.Context(), key)
	if err != nil {
		slog.Error("Failed to fetch certificate file", "key", key, "error", err)
		return response.SendNotFound(c, "Certificate file not found")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", key))
	return c.Send(data)
}

func (ctrl *Controller) Exists(c *fiber.Ctx) error {
	certificateCode := c.Params("certificateCode")

	exists := ctrl.storage.Exists(c.Context(), storage.CertificateKey(certificateCode))

	return response.SendSuccess(c, "File checked", fiber.Map{"exists": exists})
}

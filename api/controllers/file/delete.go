package file_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	certificateCode := c.Params("certificateCode")

	key := storage.CertificateKey(certificateCode)

	if err := ctrl.storage.Delete(c.Context(), key); err != nil {
		slog.Error("Failed to delete certificate file", "key", key, "error", err)
		return response.SendError(c, "Failed to delete certificate file")
	}

	slog.Info("Certificate file deleted", "key", key)
	return response.SendSuccess(c, "Certificate file deleted")
}

package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Mail fetches the rendered PDF from object storage and sends it to the
// certificate's recipient.
func (ctrl *Controller) Mail(c *fiber.Ctx) error {
	code := c.Params("code")

	cert, found := ctrl.store.CertificateByCode(code)
	if !found {
		return response.SendNotFound(c, "Certificate not found")
	}

	rcpt, found := ctrl.store.RecipientByID(cert.RecipientID)
	if !found {
		return response.SendFailed(c, "Certificate recipient no longer exists")
	}
	if rcpt.Email == "" {
		return response.SendFailed(c, "Recipient has no email address")
	}

	pdfBytes, err := ctrl.storage.Get(c.Context(), storage.CertificateKey(code))
	if err != nil {
		slog.Error("Certificate Mail fetch failed", "error", err, "code", code)
		return response.SendError(c, "Certificate PDF is not available")
	}

	if err := util.SendCertificateMail(rcpt.Email, code, pdfBytes); err != nil {
		return response.SendError(c, "Failed to send certificate mail")
	}

	return response.SendSuccess(c, "Certificate mailed", fiber.Map{"recipient": rcpt.Email})
}

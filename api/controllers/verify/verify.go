package verify_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Verify resolves a certificate code. The in-memory state is authoritative;
// the relational audit record answers for certificates issued before the
// last snapshot restore.
func (ctrl *Controller) Verify(c *fiber.Ctx) error {
	certificateCode := c.Params("certificateCode")

	if cert, found := ctrl.store.CertificateByCode(certificateCode); found {
		rcpt, _ := ctrl.store.RecipientByID(cert.RecipientID)
		return response.SendSuccess(c, "Certificate is valid", fiber.Map{
			"code":          cert.Code,
			"recipientName": rcpt.Name,
			"issuedAt":      cert.IssuedAt,
			"status":        cert.Status,
			"pdfUrl":        cert.PDFURL,
		})
	}

	record, err := ctrl.records.GetByCode(certificateCode)
	if err != nil {
		slog.Error("Failed to query certificate record", "code", certificateCode, "error", err)
		return response.SendError(c, "Failed to verify certificate")
	}

	if record == nil {
		return response.SendNotFound(c, "Certificate not found")
	}

	return response.SendSuccess(c, "Certificate is valid", fiber.Map{
		"code":          record.CertificateCode,
		"recipientName": record.RecipientName,
		"issuedAt":      record.IssueDate,
		"status":        record.Status,
		"pdfUrl":        record.PDFURL,
	})
}

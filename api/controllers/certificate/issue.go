package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Issue allocates a certificate and responds with its code right away; the
// remote pipeline (row insert, render, upload) continues in the background
// and is observable via the status endpoint.
func (ctrl *Controller) Issue(c *fiber.Ctx) error {
	body := new(payload.IssueCertificatePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	code, _, err := ctrl.issuer.Issue(body.RecipientID, body.TemplateID)
	if err != nil {
		slog.Warn("Certificate Issue rejected", "error", err,
			"recipient_id", body.RecipientID, "template_id", body.TemplateID)
		return response.SendFailed(c, err.Error())
	}

	cert, _ := ctrl.store.CertificateByCode(code)
	return response.SendSuccess(c, "Certificate Issued", cert)
}

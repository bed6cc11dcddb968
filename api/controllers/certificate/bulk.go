package certificate_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// BulkIssue appends every certificate locally before responding, then waits
// for the batched remote pipelines so the response carries the final
// success/failure summary.
func (ctrl *Controller) BulkIssue(c *fiber.Ctx) error {
	body := new(payload.BulkIssuePayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	codes, bulk, err := ctrl.issuer.BulkIssue(body.RecipientIDs, body.TemplateID)
	if err != nil {
		slog.Warn("Certificate BulkIssue rejected", "error", err, "template_id", body.TemplateID)
		return response.SendFailed(c, err.Error())
	}

	succeeded, failed, waitErr := bulk.Wait(c.Context())
	if waitErr != nil {
		slog.Warn("Certificate BulkIssue wait abandoned", "error", waitErr)
		return response.SendError(c, "Bulk issuance interrupted")
	}

	result := payload.BulkIssueResult{
		Codes:     codes,
		Requested: bulk.Requested,
		Succeeded: succeeded,
		Failed:    failed,
		Failures:  bulk.Failures(),
	}

	return response.SendSuccess(c, "Bulk issuance completed", result)
}

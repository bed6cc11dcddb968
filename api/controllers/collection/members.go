package collection_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// AddCertificates embeds copies of the named certificates, deduplicated by
// code; repeating the call with the same codes leaves membership unchanged.
func (ctrl *Controller) AddCertificates(c *fiber.Ctx) error {
	collectionId := c.Params("collectionId")

	body := new(payload.CollectionMembershipPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	if _, found := ctrl.store.CollectionByID(collectionId); !found {
		return response.SendNotFound(c, "Collection not found")
	}

	ctrl.store.AddCertificatesToCollection(collectionId, body.CertificateCodes)

	col, _ := ctrl.store.CollectionByID(collectionId)
	return response.SendSuccess(c, "Certificates added to collection", col)
}

func (ctrl *Controller) RemoveCertificates(c *fiber.Ctx) error {
	collectionId := c.Params("collectionId")

	body := new(payload.CollectionMembershipPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	if _, found := ctrl.store.CollectionByID(collectionId); !found {
		return response.SendNotFound(c, "Collection not found")
	}

	ctrl.store.RemoveCertificatesFromCollection(collectionId, body.CertificateCodes)

	col, _ := ctrl.store.CollectionByID(collectionId)
	return response.SendSuccess(c, "Certificates removed from collection", col)
}

package collection_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// Update replaces name/description/template affinity; membership is managed
// through the dedicated membership endpoints.
func (ctrl *Controller) Update(c *fiber.Ctx) error {
	collectionId := c.Params("collectionId")

	body := new(payload.UpdateCollectionPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	existing, found := ctrl.store.CollectionByID(collectionId)
	if !found {
		return response.SendNotFound(c, "Collection not found")
	}

	ctrl.store.UpdateCollection(collectionId, store.Collection{
		Name:         body.Name,
		Description:  body.Description,
		TemplateID:   body.TemplateID,
		Certificates: existing.Certificates,
	})

	return response.SendSuccess(c, "Collection Updated")
}

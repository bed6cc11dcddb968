package collection_controller

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/store"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Create(c *fiber.Ctx) error {
	body := new(payload.CreateCollectionPayload)

	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	id := ctrl.store.AddCollection(store.Collection{
		Name:        body.Name,
		Description: body.Description,
		TemplateID:  body.TemplateID,
		CreatedAt:   time.Now(),
	})

	slog.Info("Collection created", "collection_id", id, "name", body.Name)
	return response.SendSuccess(c, "Collection Created", fiber.Map{"id": id})
}

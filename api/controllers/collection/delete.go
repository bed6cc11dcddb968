package collection_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) Delete(c *fiber.Ctx) error {
	collectionId := c.Params("collectionId")

	ctrl.store.DeleteCollection(collectionId)

	slog.Info("Collection deleted", "collection_id", collectionId)
	return response.SendSuccess(c, "Collection Deleted")
}

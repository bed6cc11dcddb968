package collection_controller

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/type/response"
)

func (ctrl *Controller) GetAll(c *fiber.Ctx) error {
	return response.SendSuccess(c, "Collection fetched", ctrl.store.Collections())
}

func (ctrl *Controller) GetById(c *fiber.Ctx) error {
	collectionId := c.Params("collectionId")

	col, found := ctrl.store.CollectionByID(collectionId)
	if !found {
		return response.SendNotFound(c, "Collection not found")
	}

	return response.SendSuccess(c, "Collection fetched", col)
}

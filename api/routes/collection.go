package routes

import (
	"github.com/gofiber/fiber/v2"

	collection_controller "github.com/sunthewhat/cert-studio-api/api/controllers/collection"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
)

func SetupCollectionRoutes(router fiber.Router, deps Deps) {
	collectionCtrl := collection_controller.NewController(deps.Store)

	collectionGroup := router.Group("collection")

	collectionGroup.Use(middleware.AuthMiddleware())

	collectionGroup.Get("", collectionCtrl.GetAll)
	collectionGroup.Get(":collectionId", collectionCtrl.GetById)
	collectionGroup.Post("", collectionCtrl.Create)
	collectionGroup.Put(":collectionId", collectionCtrl.Update)
	collectionGroup.Delete(":collectionId", collectionCtrl.Delete)
	collectionGroup.Post("certificates/:collectionId", collectionCtrl.AddCertificates)
	collectionGroup.Delete("certificates/:collectionId", collectionCtrl.RemoveCertificates)
}

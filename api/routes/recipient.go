package routes

import (
	"github.com/gofiber/fiber/v2"

	recipient_controller "github.com/sunthewhat/cert-studio-api/api/controllers/recipient"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
	"github.com/sunthewhat/cert-studio-api/common"
)

func SetupRecipientRoutes(router fiber.Router, deps Deps) {
	// Attribute mirroring needs mongo; skip it when the connection is absent
	recipientCtrl := recipient_controller.NewController(deps.Store, common.Mongo != nil)

	recipientGroup := router.Group("recipient")

	recipientGroup.Use(middleware.AuthMiddleware())

	recipientGroup.Get("", recipientCtrl.GetAll)
	recipientGroup.Get(":recipientId", recipientCtrl.GetById)
	recipientGroup.Post("", recipientCtrl.Add)
	recipientGroup.Put(":recipientId", recipientCtrl.Edit)
	recipientGroup.Delete(":recipientId", recipientCtrl.Delete)
}

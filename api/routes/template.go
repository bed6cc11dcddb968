package routes

import (
	"github.com/gofiber/fiber/v2"

	template_controller "github.com/sunthewhat/cert-studio-api/api/controllers/template"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
)

func SetupTemplateRoutes(router fiber.Router, deps Deps) {
	templateCtrl := template_controller.NewController(deps.Store)

	templateGroup := router.Group("template")

	templateGroup.Use(middleware.AuthMiddleware())

	templateGroup.Get("", templateCtrl.GetAll)
	templateGroup.Get("current", templateCtrl.GetCurrent)
	templateGroup.Get(":templateId", templateCtrl.GetById)
	templateGroup.Post("", templateCtrl.Add)
	templateGroup.Put("current/:templateId", templateCtrl.SetCurrent)
	templateGroup.Put(":templateId", templateCtrl.Update)
	templateGroup.Delete(":templateId", templateCtrl.Delete)
}

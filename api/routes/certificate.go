package routes

import (
	"github.com/gofiber/fiber/v2"

	certificate_controller "github.com/sunthewhat/cert-studio-api/api/controllers/certificate"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
)

func SetupCertificateRoutes(router fiber.Router, deps Deps) {
	certificateCtrl := certificate_controller.NewController(deps.Store, deps.Issuer, deps.Records, deps.Storage)

	certificateGroup := router.Group("certificate")

	certificateGroup.Use(middleware.AuthMiddleware())

	certificateGroup.Get("", certificateCtrl.GetAll)
	certificateGroup.Get(":code", certificateCtrl.GetByCode)
	certificateGroup.Post("issue", certificateCtrl.Issue)
	certificateGroup.Post("issue/bulk", certificateCtrl.BulkIssue)
	certificateGroup.Get("generate/status/:code", certificateCtrl.Status)
	certificateGroup.Get("mail/:code", certificateCtrl.Mail)
	certificateGroup.Put(":code", certificateCtrl.Update)
	certificateGroup.Delete(":code", certificateCtrl.Delete)
}

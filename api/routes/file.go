package routes

import (
	"github.com/gofiber/fiber/v2"

	file_controller "github.com/sunthewhat/cert-studio-api/api/controllers/file"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
)

func SetupFileRoutes(router fiber.Router, deps Deps) {
	fileCtrl := file_controller.NewController(deps.Storage)

	fileGroup := router.Group("files")

	fileGroup.Use(middleware.AuthMiddleware())

	fileGroup.Get("exists/:certificateCode", fileCtrl.Exists)
	fileGroup.Delete(":certificateCode", fileCtrl.Delete)
}

// SetupPublicFileRoutes serves certificate downloads without authentication.
// Links embedded in delivered PDFs and mails point here.
func SetupPublicFileRoutes(router fiber.Router, deps Deps) {
	fileCtrl := file_controller.NewController(deps.Storage)

	router.Get("files/download/:certificateCode", fileCtrl.Download)
}

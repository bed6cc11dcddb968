package routes

import (
	"github.com/gofiber/fiber/v2"

	snapshot_controller "github.com/sunthewhat/cert-studio-api/api/controllers/snapshot"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
)

func SetupSnapshotRoutes(router fiber.Router, deps Deps) {
	snapshotCtrl := snapshot_controller.NewController(deps.Store)

	snapshotGroup := router.Group("snapshot")

	snapshotGroup.Use(middleware.Jwt())

	snapshotGroup.Get("export", snapshotCtrl.Export)
	snapshotGroup.Post("import", snapshotCtrl.Import)
}

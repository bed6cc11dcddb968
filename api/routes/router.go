package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/model/recordModel"
	"github.com/sunthewhat/cert-studio-api/internal/issuer"
	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

// Deps carries the shared services the route groups hand to their controllers.
type Deps struct {
	Store   *store.Store
	Issuer  *issuer.Issuer
	Records recordModel.IRecordRepository
	Storage storage.Client
}

func Init(router fiber.Router, deps Deps) {
	api := router.Group("api")

	publicGroup := api.Group("public")
	SetupAuthRoutes(publicGroup)
	SetupVerifyRoutes(publicGroup, deps)
	SetupPublicFileRoutes(publicGroup, deps)

	SetupTemplateRoutes(api, deps)
	SetupRecipientRoutes(api, deps)
	SetupCertificateRoutes(api, deps)
	SetupCollectionRoutes(api, deps)
	SetupFileRoutes(api, deps)
	SetupSnapshotRoutes(api, deps)
}

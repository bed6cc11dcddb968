package routes

import (
	"github.com/gofiber/fiber/v2"

	verify_controller "github.com/sunthewhat/cert-studio-api/api/controllers/verify"
)

// SetupVerifyRoutes registers the public verification endpoint; QR codes on
// issued certificates point here, so no session is required.
func SetupVerifyRoutes(router fiber.Router, deps Deps) {
	verifyCtrl := verify_controller.NewController(deps.Store, deps.Records)

	router.Get("verify/:certificateCode", verifyCtrl.Verify)
}

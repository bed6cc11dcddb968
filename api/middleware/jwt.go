package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"

	"github.com/sunthewhat/cert-studio-api/common"
	"github.com/sunthewhat/cert-studio-api/type/response"
	"github.com/sunthewhat/cert-studio-api/type/shared"
)

// Jwt guards the snapshot export/import group.
func Jwt() fiber.Handler {
	conf := jwtware.Config{
		SigningKey:  []byte(*common.Config.JWTSecret),
		TokenLookup: "header:Authorization",
		AuthScheme:  "Bearer",
		ContextKey:  "auth",
		Claims:      new(shared.UserClaims),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return response.SendUnauthorized(c, "JWT validation failure")
		},
	}
	return jwtware.New(conf)
}

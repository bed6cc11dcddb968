package middleware

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

// AuthMiddleware - Complete JWT authentication middleware
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			slog.Warn("AuthMiddleware: missing authorization header",
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Authorization header is required")
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			slog.Warn("AuthMiddleware: invalid authorization header format",
				"path", c.Path(),
				"method", c.Method(),
				"ip", c.IP())
			return response.SendUnauthorized(c, "Invalid authorization header format. Expected: Bearer <token>")
		}

		claims, err := util.DecodeAuthToken(tokenParts[1])
		if err != nil {
			slog.Warn("AuthMiddleware: token validation failed",
				"error", err,
				"path", c.Path(),
				"method", c.Method())
			return response.SendUnauthorized(c, "Invalid or expired token")
		}

		if claims.UserId == nil || *claims.UserId == "" {
			return response.SendUnauthorized(c, "Token carries no user")
		}

		c.Locals("user_id", *claims.UserId)

		return c.Next()
	}
}

// GetUserFromContext - Helper function to extract user ID from request context
func GetUserFromContext(c *fiber.Ctx) (string, bool) {
	if userID := c.Locals("user_id"); userID != nil {
		if id, ok := userID.(string); ok {
			return id, true
		}
	}
	return "", false
}

package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/sunthewhat/cert-studio-api/common"
)

func Recover() fiber.Handler {
	return recover.New()
}

func Cors() fiber.Handler {
	origins := make([]string, 0, len(common.Config.Cors))
	for _, origin := range common.Config.Cors {
		if origin != nil {
			origins = append(origins, *origin)
		}
	}

	return cors.New(cors.Config{
		AllowOrigins:     strings.Join(origins, ","),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}

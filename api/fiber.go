package api

import (
	"log/slog"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"github.com/sunthewhat/cert-studio-api/api/handler"
	"github.com/sunthewhat/cert-studio-api/api/middleware"
	"github.com/sunthewhat/cert-studio-api/api/routes"
	"github.com/sunthewhat/cert-studio-api/common"
)

func InitFiber(deps routes.Deps) {
	cfg := fiber.Config{
		AppName:       "cert-studio api",
		ErrorHandler:  handler.HandleError,
		Prefork:       false,
		StrictRouting: true,
		Network:       fiber.NetworkTCP,
	}
	app := fiber.New(cfg)

	app.Use(logger.New())
	app.Use(middleware.Recover())
	app.Use(middleware.Cors())

	routes.Init(app, deps)

	app.Use(handler.HandleNotFound)

	slog.Info("Starting server", "port", *common.Config.Port)
	err := app.Listen(*common.Config.Port)

	if err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}

package auth_controller

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/sunthewhat/cert-studio-api/api/model/userModel"
	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/type/payload"
	"github.com/sunthewhat/cert-studio-api/type/response"
)

func Register(c *fiber.Ctx) error {
	body := new(payload.RegisterPayload)

	// Parse Body to struct
	if err := c.BodyParser(body); err != nil {
		return response.SendError(c, "Failed to parse body")
	}

	// Validate Body structure
	if err := util.ValidateStruct(body); err != nil {
		errors := util.GetValidationErrors(err)
		return response.SendFailed(c, errors[0])
	}

	// Check if username already existed
	if dupUser, err := userModel.GetByUsername(body.Username); dupUser != nil || err != nil {
		if dupUser != nil {
			return response.SendFailed(c, "User already existed")
		}
		return response.SendInternalError(c, err)
	}

	// Hasing Password
	hashedPassword, hashErr := util.HashPassword(body.Password)

	if hashErr != nil {
		return response.SendError(c, "Password hashing failed")
	}

	createdUser, createErr := userModel.CreateNewUser(body.Username, hashedPassword, body.Firstname, body.Lastname)

	if createErr != nil {
		slog.Error("Auth Register failed to create user", "error", createErr, "username", body.Username)
		return response.SendError(c, "Failed to create user")
	}

	slog.Info("Auth Register successful", "username", createdUser.Username, "user_id", createdUser.ID)
	return response.SendSuccess(c, "User Registered", fiber.Map{
		"id":       createdUser.ID,
		"username": createdUser.Username,
	})
}

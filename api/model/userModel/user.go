package userModel

import (
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sunthewhat/cert-studio-api/common"
	"github.com/sunthewhat/cert-studio-api/type/shared/model"
)

func GetByUsername(username string) (*model.User, error) {
	user := new(model.User)
	queryErr := common.Gorm.Where("username = ?", username).First(user).Error

	if queryErr != nil {
		if errors.Is(queryErr, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		slog.Error("User GetByUsername", "error", queryErr, "username", username)
		return nil, queryErr
	}

	return user, nil
}

func CreateNewUser(username string, password string, firstname string, lastname string) (*model.User, error) {
	user := &model.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  password,
		Firstname: firstname,
		Lastname:  lastname,
	}

	if createErr := common.Gorm.Create(user).Error; createErr != nil {
		slog.Error("User CreateNewUser", "error", createErr, "username", username)
		return nil, createErr
	}

	return user, nil
}

package services

import (
	"errors"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"
	"github.com/LielBuchnik/EmmaTrackerAPI/utils"

	"gorm.io/gorm"
)

func RegisterUser(username, email, password string) (*models.User, error) {
	var existing models.User
	err := config.DB.Where("username = ? OR email = ?", username, email).First(&existing).Error
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		Email:    email,
		Password: hashedPassword,
		Theme:    "light",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func AuthenticateUser(username, password string, rememberMe bool) (string, *models.User, error) {
	var user models.User
	result := config.DB.Where("username = ?", username).First(&user)
	if result.Error != nil {
		return "", nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(user.ID, user.Username, rememberMe)
	if err != nil {
		return "", nil, err
	}

	return token, &user, nil
}

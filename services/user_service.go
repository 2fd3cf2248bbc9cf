package services

import (
	"errors"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"
	"github.com/LielBuchnik/EmmaTrackerAPI/utils"
)

// HomepageData returns the greeting plus every baby of the user, each
// tagged with a display age, which is all the landing screen needs.
func HomepageData(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.Preload("Babies").First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	now := time.Now()
	babies := make([]map[string]interface{}, 0, len(user.Babies))
	for _, b := range user.Babies {
		months, _ := utils.AgeInMonths(b.Birthdate, now)
		babies = append(babies, map[string]interface{}{
			"id":        b.ID,
			"name":      b.Name,
			"birthdate": b.Birthdate,
			"gender":    b.Gender,
			"image":     b.Image,
			"ageMonths": months,
			"ageLabel":  utils.AgeLabel(months),
		})
	}

	return map[string]interface{}{
		"message": "Hello, " + user.Username,
		"babies":  babies,
	}, nil
}

type SettingsInput struct {
	Theme          string `json:"theme"`
	SelectedBabyID *uint  `json:"selectedBabyId"`
}

// GetUserSettings loads the persisted dashboard preferences. Clients
// call this once at session start instead of keeping ambient state.
func GetUserSettings(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	return map[string]interface{}{
		"username":       user.Username,
		"email":          user.Email,
		"theme":          user.Theme,
		"selectedBabyId": user.SelectedBabyID,
	}, nil
}

// UpdateUserSettings persists theme and focused-baby changes.
func UpdateUserSettings(userID uint, input SettingsInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.Theme != "" {
		if input.Theme != "light" && input.Theme != "dark" {
			return ErrInvalidTheme
		}
		user.Theme = input.Theme
	}

	if input.SelectedBabyID != nil {
		var baby models.Baby
		if err := config.DB.First(&baby, *input.SelectedBabyID).Error; err != nil {
			return ErrBabyNotFound
		}
		if baby.UserID != userID {
			return ErrNotBabyOwner
		}
		user.SelectedBabyID = input.SelectedBabyID
	}

	return config.DB.Save(&user).Error
}

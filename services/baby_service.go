package services

import (
	"errors"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"

	"gorm.io/gorm"
)

type BabyService struct{}

func NewBabyService() *BabyService {
	return &BabyService{}
}

func (s *BabyService) ListBabies(userID uint) ([]models.Baby, error) {
	var babies []models.Baby
	err := config.DB.Where("user_id = ?", userID).Find(&babies).Error
	return babies, err
}

func (s *BabyService) CreateBaby(userID uint, name string, birthdate time.Time, gender, imageBase64 string) (*models.Baby, error) {
	if name == "" || birthdate.IsZero() || (gender != "boy" && gender != "girl") {
		return nil, ErrInvalidBabyData
	}

	// the owning user must exist
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, err
	}

	baby := models.Baby{
		Name:      name,
		Birthdate: birthdate,
		Gender:    gender,
		Image:     imageBase64,
		UserID:    userID,
	}
	if err := config.DB.Create(&baby).Error; err != nil {
		return nil, err
	}
	return &baby, nil
}

// GetOwnedBaby loads a baby and verifies it belongs to userID. Every
// baby-scoped operation goes through this check.
func (s *BabyService) GetOwnedBaby(userID, babyID uint) (*models.Baby, error) {
	var baby models.Baby
	if err := config.DB.First(&baby, babyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBabyNotFound
		}
		return nil, err
	}
	if baby.UserID != userID {
		return nil, ErrNotBabyOwner
	}
	return &baby, nil
}

type UpdateBabyInput struct {
	Name        string     `json:"name"`
	Birthdate   *time.Time `json:"birthdate"`
	Gender      string     `json:"gender"`
	ImageBase64 string     `json:"imageBase64"`
}

// UpdateBaby applies a partial update; unset fields keep their value.
func (s *BabyService) UpdateBaby(userID, babyID uint, input UpdateBabyInput) (*models.Baby, error) {
	baby, err := s.GetOwnedBaby(userID, babyID)
	if err != nil {
		return nil, err
	}

	if input.Name != "" {
		baby.Name = input.Name
	}
	if input.Birthdate != nil {
		baby.Birthdate = *input.Birthdate
	}
	if input.Gender != "" {
		if input.Gender != "boy" && input.Gender != "girl" {
			return nil, ErrInvalidBabyData
		}
		baby.Gender = input.Gender
	}
	if input.ImageBase64 != "" {
		baby.Image = input.ImageBase64
	}

	if err := config.DB.Save(baby).Error; err != nil {
		return nil, err
	}
	return baby, nil
}

// DeleteBaby removes a baby together with its feeding and blood sugar
// logs. The cascade is deliberate: orphaned logs are unreachable once
// their baby is gone.
func (s *BabyService) DeleteBaby(userID, babyID uint) error {
	baby, err := s.GetOwnedBaby(userID, babyID)
	if err != nil {
		return err
	}

	return config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("baby_id = ?", baby.ID).Delete(&models.BloodSugar{}).Error; err != nil {
			return err
		}
		if err := tx.Where("baby_id = ?", baby.ID).Delete(&models.Food{}).Error; err != nil {
			return err
		}
		// drop a stale dashboard selection
		if err := tx.Model(&models.User{}).
			Where("id = ? AND selected_baby_id = ?", userID, baby.ID).
			Update("selected_baby_id", nil).Error; err != nil {
			return err
		}
		return tx.Delete(baby).Error
	})
}

package services

import (
	"fmt"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"

	"gorm.io/gorm"
)

type FeedingService struct {
	babies *BabyService
}

func NewFeedingService(bs *BabyService) *FeedingService {
	return &FeedingService{babies: bs}
}

type BloodSugarInput struct {
	Level           *float64   `json:"level"`
	MeasurementTime *time.Time `json:"measurementTime"`
	Notes           string     `json:"notes"`
}

type FeedingInput struct {
	Type       string           `json:"type" binding:"required"`
	Quantity   float64          `json:"quantity" binding:"required"`
	Time       time.Time        `json:"time" binding:"required"`
	Notes      string           `json:"notes"`
	BloodSugar *BloodSugarInput `json:"bloodSugar"`
}

func (s *FeedingService) AddFood(userID, babyID uint, in FeedingInput) (*models.Food, error) {
	if _, err := s.babies.GetOwnedBaby(userID, babyID); err != nil {
		return nil, err
	}
	if in.Quantity <= 0 {
		return nil, ErrQuantityNotPositive
	}

	food := models.Food{
		Type:     in.Type,
		Quantity: in.Quantity,
		Time:     in.Time,
		Notes:    in.Notes,
		BabyID:   babyID,
	}
	if err := config.DB.Create(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

// ListFoods returns the newest feedings first, so callers can treat the
// head of the list as the latest feeding. Default limit is 10.
func (s *FeedingService) ListFoods(userID, babyID uint, limit int) ([]models.Food, error) {
	if _, err := s.babies.GetOwnedBaby(userID, babyID); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 10
	}

	var foods []models.Food
	err := config.DB.
		Where("baby_id = ?", babyID).
		Order("time DESC").
		Limit(limit).
		Find(&foods).Error
	return foods, err
}

// LogFeedingWithBloodSugar stores a feeding and, when a level was
// supplied, the blood sugar reading taken with it. The two rows commit
// together or not at all; a paired reading defaults its measurement
// time to the feeding time and points back at the new feeding.
func (s *FeedingService) LogFeedingWithBloodSugar(userID, babyID uint, in FeedingInput) (*models.Food, *models.BloodSugar, error) {
	if _, err := s.babies.GetOwnedBaby(userID, babyID); err != nil {
		return nil, nil, err
	}
	if in.Quantity <= 0 {
		return nil, nil, ErrQuantityNotPositive
	}

	var food models.Food
	var reading *models.BloodSugar

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		food = models.Food{
			Type:     in.Type,
			Quantity: in.Quantity,
			Time:     in.Time,
			Notes:    in.Notes,
			BabyID:   babyID,
		}
		if err := tx.Create(&food).Error; err != nil {
			return err
		}

		if in.BloodSugar == nil || in.BloodSugar.Level == nil {
			return nil
		}

		level := *in.BloodSugar.Level
		if level < 0 || level > 500 {
			return ErrLevelOutOfRange
		}

		measuredAt := in.Time
		if in.BloodSugar.MeasurementTime != nil {
			measuredAt = *in.BloodSugar.MeasurementTime
		}

		bs := models.BloodSugar{
			Level:           level,
			MeasurementTime: measuredAt,
			Notes:           in.BloodSugar.Notes,
			BabyID:          babyID,
			FoodID:          &food.ID,
		}
		if err := tx.Create(&bs).Error; err != nil {
			return err
		}
		reading = &bs
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrFeedingTxFailed, err)
	}

	if reading != nil {
		notifyIfOutOfRange(userID, babyID, reading.Level)
	}
	return &food, reading, nil
}

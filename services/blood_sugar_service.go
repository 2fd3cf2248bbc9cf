package services

import (
	"errors"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"

	"gorm.io/gorm"
)

type BloodSugarService struct {
	babies *BabyService
}

func NewBloodSugarService(bs *BabyService) *BloodSugarService {
	return &BloodSugarService{babies: bs}
}

// ListBloodSugars returns the newest readings first.
func (s *BloodSugarService) ListBloodSugars(userID, babyID uint) ([]models.BloodSugar, error) {
	if _, err := s.babies.GetOwnedBaby(userID, babyID); err != nil {
		return nil, err
	}

	var readings []models.BloodSugar
	err := config.DB.
		Where("baby_id = ?", babyID).
		Order("measurement_time DESC").
		Find(&readings).Error
	return readings, err
}

// CreateBloodSugar stores a standalone reading (not tied to a feeding).
func (s *BloodSugarService) CreateBloodSugar(userID, babyID uint, in BloodSugarInput) (*models.BloodSugar, error) {
	if _, err := s.babies.GetOwnedBaby(userID, babyID); err != nil {
		return nil, err
	}
	if in.Level == nil || *in.Level < 0 || *in.Level > 500 {
		return nil, ErrLevelOutOfRange
	}
	if in.MeasurementTime == nil {
		return nil, ErrMeasurementTimeRequired
	}

	reading := models.BloodSugar{
		Level:           *in.Level,
		MeasurementTime: *in.MeasurementTime,
		Notes:           in.Notes,
		BabyID:          babyID,
	}
	if err := config.DB.Create(&reading).Error; err != nil {
		return nil, err
	}

	notifyIfOutOfRange(userID, babyID, reading.Level)
	return &reading, nil
}

// UpdateBloodSugar applies a partial update; unset fields keep their value.
func (s *BloodSugarService) UpdateBloodSugar(userID, readingID uint, in BloodSugarInput) (*models.BloodSugar, error) {
	reading, err := s.getOwnedReading(userID, readingID)
	if err != nil {
		return nil, err
	}

	if in.Level != nil {
		if *in.Level < 0 || *in.Level > 500 {
			return nil, ErrLevelOutOfRange
		}
		reading.Level = *in.Level
	}
	if in.MeasurementTime != nil {
		reading.MeasurementTime = *in.MeasurementTime
	}
	if in.Notes != "" {
		reading.Notes = in.Notes
	}

	if err := config.DB.Save(reading).Error; err != nil {
		return nil, err
	}
	return reading, nil
}

// DeleteBloodSugar removes a reading. A feeding paired with it is left
// untouched; the pairing is an association, not ownership.
func (s *BloodSugarService) DeleteBloodSugar(userID, readingID uint) error {
	reading, err := s.getOwnedReading(userID, readingID)
	if err != nil {
		return err
	}
	return config.DB.Delete(reading).Error
}

func (s *BloodSugarService) getOwnedReading(userID, readingID uint) (*models.BloodSugar, error) {
	var reading models.BloodSugar
	if err := config.DB.First(&reading, readingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBloodSugarNotFound
		}
		return nil, err
	}
	if _, err := s.babies.GetOwnedBaby(userID, reading.BabyID); err != nil {
		return nil, err
	}
	return &reading, nil
}

package services

import (
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
)

// DashboardService merges logs across every baby a user owns so the
// charts can draw one line per child over a shared time axis.
type DashboardService struct {
	babies *BabyService
}

func NewDashboardService(bs *BabyService) *DashboardService {
	return &DashboardService{babies: bs}
}

type TaggedBloodSugar struct {
	ID              uint      `json:"id"`
	Level           float64   `json:"level"`
	MeasurementTime time.Time `json:"measurementTime"`
	Notes           string    `json:"notes"`
	FoodID          *uint     `json:"foodId"`
	BabyID          uint      `json:"babyId"`
	BabyName        string    `json:"babyName"`
}

type TaggedFood struct {
	ID       uint      `json:"id"`
	Type     string    `json:"type"`
	Quantity float64   `json:"quantity"`
	Time     time.Time `json:"time"`
	Notes    string    `json:"notes"`
	BabyID   uint      `json:"babyId"`
	BabyName string    `json:"babyName"`
}

// BloodSugarSeries returns readings for one baby (ownership verified)
// or, when babyID is nil, for every baby the user owns. Rows come back
// in ascending measurement time across babies, each tagged with its
// baby, so the caller can split them into per-child series. The time
// window is inclusive and only applied when both bounds are present.
func (s *DashboardService) BloodSugarSeries(userID uint, babyID *uint, from, to *time.Time) ([]TaggedBloodSugar, error) {
	if babyID != nil {
		if _, err := s.babies.GetOwnedBaby(userID, *babyID); err != nil {
			return nil, err
		}
	}

	q := config.DB.
		Table("blood_sugars").
		Select("blood_sugars.id, blood_sugars.level, blood_sugars.measurement_time, blood_sugars.notes, blood_sugars.food_id, blood_sugars.baby_id, babies.name AS baby_name").
		Joins("JOIN babies ON babies.id = blood_sugars.baby_id").
		Where("babies.user_id = ?", userID).
		Where("blood_sugars.deleted_at IS NULL").
		Where("babies.deleted_at IS NULL")

	if babyID != nil {
		q = q.Where("blood_sugars.baby_id = ?", *babyID)
	}
	if from != nil && to != nil {
		q = q.Where("blood_sugars.measurement_time BETWEEN ? AND ?", *from, *to)
	}

	rows := []TaggedBloodSugar{}
	err := q.Order("blood_sugars.measurement_time ASC").Scan(&rows).Error
	return rows, err
}

// FoodSeries is the feeding-side counterpart of BloodSugarSeries.
func (s *DashboardService) FoodSeries(userID uint, babyID *uint, from, to *time.Time) ([]TaggedFood, error) {
	if babyID != nil {
		if _, err := s.babies.GetOwnedBaby(userID, *babyID); err != nil {
			return nil, err
		}
	}

	q := config.DB.
		Table("foods").
		Select("foods.id, foods.type, foods.quantity, foods.time, foods.notes, foods.baby_id, babies.name AS baby_name").
		Joins("JOIN babies ON babies.id = foods.baby_id").
		Where("babies.user_id = ?", userID).
		Where("foods.deleted_at IS NULL").
		Where("babies.deleted_at IS NULL")

	if babyID != nil {
		q = q.Where("foods.baby_id = ?", *babyID)
	}
	if from != nil && to != nil {
		q = q.Where("foods.time BETWEEN ? AND ?", *from, *to)
	}

	rows := []TaggedFood{}
	err := q.Order("foods.time ASC").Scan(&rows).Error
	return rows, err
}

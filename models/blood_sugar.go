package models

import (
	"time"

	"gorm.io/gorm"
)

// A glucose reading. FoodID is set when the reading was logged together
// with a feeding; a reading can also stand alone.
type BloodSugar struct {
	gorm.Model
	Level           float64   `gorm:"not null"` // mg/dL, valid range 0-500
	MeasurementTime time.Time `gorm:"index;not null"`
	Notes           string    `gorm:"type:text"`
	BabyID          uint      `gorm:"index;not null"`
	FoodID          *uint
}

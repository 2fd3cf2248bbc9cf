package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged feeding: what was fed, how much, when.
type Food struct {
	gorm.Model
	Type     string    `gorm:"not null"` // free text, e.g. "breast milk" | "formula" | "other"
	Quantity float64   `gorm:"not null"` // grams
	Time     time.Time `gorm:"index;not null"`
	Notes    string    `gorm:"type:text"`
	BabyID   uint      `gorm:"index;not null"`
}

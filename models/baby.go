package models

import (
	"time"

	"gorm.io/gorm"
)

type Baby struct {
	gorm.Model
	Name      string    `gorm:"not null"`
	Birthdate time.Time `gorm:"not null"`
	Gender    string    `gorm:"size:8;not null"` // "boy" | "girl"
	Image     string    `gorm:"type:text"`       // base64 photo, stored verbatim
	UserID    uint      `gorm:"index;not null"`

	Foods       []Food       `gorm:"foreignKey:BabyID"`
	BloodSugars []BloodSugar `gorm:"foreignKey:BabyID"`
}

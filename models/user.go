package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;not null"`
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`

	// Dashboard preferences, persisted so every session starts where the
	// last one left off.
	Theme          string `gorm:"size:16;default:light"`
	SelectedBabyID *uint

	Babies []Baby
}

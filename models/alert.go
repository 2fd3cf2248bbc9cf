package models

import "time"

// Raised when a logged blood sugar reading leaves the safe band.
type Alert struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index"`
	BabyID    uint      `gorm:"index"`
	Type      string    `gorm:"size:20"` // "warning" | "info"
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time
}

package services

import (
	"fmt"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/models"
	"github.com/LielBuchnik/EmmaTrackerAPI/utils"

	"gorm.io/gorm"
)

// Safe band for logged readings, in mg/dL. Outside it an alert is
// raised; beyond the severe bounds the parent is also emailed.
const (
	lowLevelThreshold   = 60
	highLevelThreshold  = 200
	severeLowThreshold  = 50
	severeHighThreshold = 250
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// notifyIfOutOfRange raises an alert for a freshly logged reading when
// it falls outside the safe band. Safe to call anywhere; a no-op until
// InitAlertDeps has run.
func notifyIfOutOfRange(userID, babyID uint, level float64) {
	if _alert.db == nil {
		return
	}
	if level >= lowLevelThreshold && level <= highLevelThreshold {
		return
	}

	var baby models.Baby
	if err := _alert.db.First(&baby, babyID).Error; err != nil {
		return
	}

	direction := "high"
	if level < lowLevelThreshold {
		direction = "low"
	}
	typ := "info"
	if level < severeLowThreshold || level > severeHighThreshold {
		typ = "warning"
	}
	message := fmt.Sprintf("%s blood sugar for %s: %.0f mg/dL", direction, baby.Name, level)

	a := &models.Alert{UserID: userID, BabyID: babyID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.BroadcastAlert(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "Blood sugar alert", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID), "babyId": fmt.Sprintf("%d", babyID),
		})
	}
	if typ == "warning" {
		var user models.User
		if err := _alert.db.First(&user, userID).Error; err == nil {
			_ = utils.SendBloodSugarAlertEmail(user.Email, baby.Name, level)
		}
	}
}

// ListAlerts returns the newest alerts for a user, capped at 50.
func ListAlerts(db *gorm.DB, userID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := db.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(50).
		Find(&alerts).Error
	return alerts, err
}

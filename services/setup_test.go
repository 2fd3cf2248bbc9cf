package services

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBCounter int64

// setupTestDB swaps config.DB for a fresh in-memory database and turns
// alert side effects off.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := atomic.AddInt64(&testDBCounter, 1)
	dsn := fmt.Sprintf("file:svc_test_%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Baby{},
		&models.Food{},
		&models.BloodSugar{},
		&models.Alert{},
		&models.UserDevice{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	config.DB = db
	_alert = alertDeps{}
	return db
}

func createTestUser(t *testing.T, username string) *models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
		Theme:    "light",
	}
	if err := config.DB.Create(&user).Error; err != nil {
		t.Fatalf("create test user: %v", err)
	}
	return &user
}

func createTestBaby(t *testing.T, userID uint, name string) *models.Baby {
	t.Helper()
	baby := models.Baby{
		Name:      name,
		Birthdate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Gender:    "girl",
		UserID:    userID,
	}
	if err := config.DB.Create(&baby).Error; err != nil {
		t.Fatalf("create test baby: %v", err)
	}
	return &baby
}

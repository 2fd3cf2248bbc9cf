package services

import (
	"testing"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newDashboardService() *DashboardService {
	return NewDashboardService(NewBabyService())
}

func addReading(t *testing.T, db *gorm.DB, babyID uint, level float64, at time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&models.BloodSugar{
		Level:           level,
		MeasurementTime: at,
		BabyID:          babyID,
	}).Error)
}

func TestBloodSugarSeriesMergesAcrossBabies(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, "parent")
	other := createTestUser(t, "other")
	a := createTestBaby(t, user.ID, "Emma")
	b := createTestBaby(t, user.ID, "Noa")
	c := createTestBaby(t, user.ID, "Ben")
	foreign := createTestBaby(t, other.ID, "Lior")

	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(2 * time.Hour)
	t3 := t1.Add(4 * time.Hour)
	addReading(t, db, b.ID, 90, t2)
	addReading(t, db, a.ID, 85, t1)
	addReading(t, db, c.ID, 100, t3)
	addReading(t, db, foreign.ID, 70, t2)

	rows, err := newDashboardService().BloodSugarSeries(user.ID, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	// ascending by measurement time, each row tagged with its baby
	assert.Equal(t, "Emma", rows[0].BabyName)
	assert.Equal(t, a.ID, rows[0].BabyID)
	assert.Equal(t, "Noa", rows[1].BabyName)
	assert.Equal(t, "Ben", rows[2].BabyName)
	assert.True(t, rows[0].MeasurementTime.Before(rows[1].MeasurementTime))
	assert.True(t, rows[1].MeasurementTime.Before(rows[2].MeasurementTime))
}

func TestBloodSugarSeriesDateWindowIsInclusive(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, "parent")
	baby := createTestBaby(t, user.ID, "Emma")

	jan := func(day int) time.Time {
		return time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC)
	}
	addReading(t, db, baby.ID, 80, jan(1))
	addReading(t, db, baby.ID, 90, jan(5))
	addReading(t, db, baby.ID, 100, jan(10))

	from := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 8, 23, 59, 59, 0, time.UTC)
	rows, err := newDashboardService().BloodSugarSeries(user.ID, nil, &from, &to)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 90.0, rows[0].Level)

	// a bound exactly on a record keeps it
	onRecord := jan(5)
	rows, err = newDashboardService().BloodSugarSeries(user.ID, nil, &onRecord, &onRecord)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestBloodSugarSeriesSingleBabyVerifiesOwnership(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, "parent")
	other := createTestUser(t, "other")
	mine := createTestBaby(t, user.ID, "Emma")
	theirs := createTestBaby(t, other.ID, "Lior")

	addReading(t, db, mine.ID, 95, time.Now())
	addReading(t, db, theirs.ID, 95, time.Now())

	_, err := newDashboardService().BloodSugarSeries(user.ID, &theirs.ID, nil, nil)
	assert.ErrorIs(t, err, ErrNotBabyOwner)

	rows, err := newDashboardService().BloodSugarSeries(user.ID, &mine.ID, nil, nil)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestFoodSeriesMergesAndFilters(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, "parent")
	a := createTestBaby(t, user.ID, "Emma")
	b := createTestBaby(t, user.ID, "Noa")

	t1 := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	require.NoError(t, db.Create(&models.Food{Type: "formula", Quantity: 100, Time: t2, BabyID: b.ID}).Error)
	require.NoError(t, db.Create(&models.Food{Type: "breast milk", Quantity: 120, Time: t1, BabyID: a.ID}).Error)

	rows, err := newDashboardService().FoodSeries(user.ID, nil, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Emma", rows[0].BabyName)
	assert.Equal(t, "breast milk", rows[0].Type)
	assert.Equal(t, "Noa", rows[1].BabyName)

	rows, err = newDashboardService().FoodSeries(user.ID, &b.ID, nil, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "formula", rows[0].Type)
}

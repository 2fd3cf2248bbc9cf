package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LielBuchnik/EmmaTrackerAPI/config"
	"github.com/LielBuchnik/EmmaTrackerAPI/models"
	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestAPI(t *testing.T) *gin.Engine {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:api_test_%s?mode=memory&cache=shared", t.Name())), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Baby{},
		&models.Food{},
		&models.BloodSugar{},
		&models.Alert{},
		&models.UserDevice{},
	))
	config.DB = db

	return SetupRouter(services.NewRealtimeHub(), nil)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func signupAndLogin(t *testing.T, r *gin.Engine, username string) string {
	t.Helper()
	w := doJSON(t, r, "POST", "/api/auth/signup", "",
		fmt.Sprintf(`{"username":%q,"email":"%s@example.com","password":"secret123"}`, username, username))
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, "POST", "/api/auth/login", "",
		fmt.Sprintf(`{"username":%q,"password":"secret123"}`, username))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token, _ := decodeBody(t, w)["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func createBaby(t *testing.T, r *gin.Engine, token, name string) uint {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", name))
	require.NoError(t, mw.WriteField("birthdate", "2024-01-15"))
	require.NoError(t, mw.WriteField("gender", "girl"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/api/babies", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	id, ok := decodeBody(t, w)["ID"].(float64)
	require.True(t, ok)
	return uint(id)
}

func TestSignupLoginAndHomepage(t *testing.T) {
	r := setupTestAPI(t)
	token := signupAndLogin(t, r, "parent")

	// duplicate signup is rejected
	w := doJSON(t, r, "POST", "/api/auth/signup", "",
		`{"username":"parent","email":"parent@example.com","password":"secret123"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// wrong password
	w = doJSON(t, r, "POST", "/api/auth/login", "", `{"username":"parent","password":"nope"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// protected route without a token
	w = doJSON(t, r, "GET", "/api/homepage", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, r, "GET", "/api/homepage", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Hello, parent", decodeBody(t, w)["message"])
}

func TestCombinedFeedingLogFlow(t *testing.T) {
	r := setupTestAPI(t)
	token := signupAndLogin(t, r, "parent")
	babyID := createBaby(t, r, token, "Emma")

	path := fmt.Sprintf("/api/babies/%d/foods-and-blood-sugar", babyID)
	w := doJSON(t, r, "POST", path, token,
		`{"type":"breast milk","quantity":120,"time":"2024-03-01T08:00:00Z","bloodSugar":{"level":95}}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, true, body["bloodSugarCreated"])

	// out-of-range level rolls the whole submission back
	w = doJSON(t, r, "POST", path, token,
		`{"type":"formula","quantity":80,"time":"2024-03-01T12:00:00Z","bloodSugar":{"level":600}}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	var foods int64
	config.DB.Model(&models.Food{}).Count(&foods)
	assert.EqualValues(t, 1, foods)

	// a standalone reading without a measurement time is a client error
	w = doJSON(t, r, "POST", fmt.Sprintf("/api/babies/%d/blood-sugars", babyID), token, `{"level":95}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// so is a non-positive quantity
	w = doJSON(t, r, "POST", path, token,
		`{"type":"formula","quantity":-50,"time":"2024-03-01T14:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())

	// readings list shows the paired record
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/babies/%d/blood-sugars", babyID), token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var readings []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &readings))
	require.Len(t, readings, 1)
	assert.EqualValues(t, 95, readings[0]["Level"])
}

func TestDashboardAggregation(t *testing.T) {
	r := setupTestAPI(t)
	token := signupAndLogin(t, r, "parent")
	emma := createBaby(t, r, token, "Emma")
	noa := createBaby(t, r, token, "Noa")

	log := func(babyID uint, ts string, level int) {
		w := doJSON(t, r, "POST", fmt.Sprintf("/api/babies/%d/foods-and-blood-sugar", babyID), token,
			fmt.Sprintf(`{"type":"formula","quantity":100,"time":%q,"bloodSugar":{"level":%d}}`, ts, level))
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	log(noa, "2024-01-05T10:00:00Z", 90)
	log(emma, "2024-01-01T10:00:00Z", 85)
	log(emma, "2024-01-10T10:00:00Z", 100)

	w := doJSON(t, r, "GET", "/api/babies-all/blood-sugars", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 3)
	assert.Equal(t, "Emma", rows[0]["babyName"])
	assert.Equal(t, "Noa", rows[1]["babyName"])
	assert.Equal(t, "Emma", rows[2]["babyName"])

	// inclusive window keeps only the middle reading
	w = doJSON(t, r, "GET", "/api/babies-all/blood-sugars?startDate=2024-01-02&endDate=2024-01-08", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	rows = nil
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rows))
	require.Len(t, rows, 1)
	assert.EqualValues(t, 90, rows[0]["level"])

	// another user cannot read the series of a baby they do not own
	other := signupAndLogin(t, r, "other")
	w = doJSON(t, r, "GET", fmt.Sprintf("/api/babies-all/blood-sugars?babyId=%d", emma), other, "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestBabyOwnershipOverHTTP(t *testing.T) {
	r := setupTestAPI(t)
	owner := signupAndLogin(t, r, "owner")
	stranger := signupAndLogin(t, r, "stranger")
	babyID := createBaby(t, r, owner, "Emma")

	w := doJSON(t, r, "GET", fmt.Sprintf("/api/babies/%d", babyID), stranger, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "PUT", fmt.Sprintf("/api/babies/%d", babyID), stranger, `{"name":"Hacked"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "DELETE", fmt.Sprintf("/api/babies/%d", babyID), stranger, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, "GET", fmt.Sprintf("/api/babies/%d", babyID), owner, "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSettingsRoundTrip(t *testing.T) {
	r := setupTestAPI(t)
	token := signupAndLogin(t, r, "parent")
	babyID := createBaby(t, r, token, "Emma")

	w := doJSON(t, r, "PUT", "/api/user/settings", token,
		fmt.Sprintf(`{"theme":"dark","selectedBabyId":%d}`, babyID))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, r, "GET", "/api/user/settings", token, "")
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "dark", body["theme"])
	assert.EqualValues(t, babyID, body["selectedBabyId"])

	// an unknown theme is a client error, not a server one
	w = doJSON(t, r, "PUT", "/api/user/settings", token, `{"theme":"sparkly"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
}

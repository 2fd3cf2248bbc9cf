package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
)

// dashboardWindow pulls the optional babyId / startDate / endDate query
// params. The window only applies when both bounds are present.
func dashboardWindow(c *gin.Context) (babyID *uint, from, to *time.Time, ok bool) {
	if v := c.Query("babyId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid babyId"})
			return nil, nil, nil, false
		}
		u := uint(id)
		babyID = &u
	}

	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err := parseTimeParam(startStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid startDate"})
			return nil, nil, nil, false
		}
		end, err := parseTimeParam(endStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid endDate"})
			return nil, nil, nil, false
		}
		if end.Before(start) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "endDate must be on/after startDate"})
			return nil, nil, nil, false
		}
		from, to = &start, &end
	}
	return babyID, from, to, true
}

// GET /api/babies-all/blood-sugars
func GetAllBloodSugars(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	babyID, from, to, ok := dashboardWindow(c)
	if !ok {
		return
	}

	svc := services.NewDashboardService(services.NewBabyService())
	rows, err := svc.BloodSugarSeries(uid, babyID, from, to)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GET /api/babies-all/foods
func GetAllFoods(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	babyID, from, to, ok := dashboardWindow(c)
	if !ok {
		return
	}

	svc := services.NewDashboardService(services.NewBabyService())
	rows, err := svc.FoodSeries(uid, babyID, from, to)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}

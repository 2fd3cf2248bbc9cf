package controllers

import (
	"net/http"
	"strconv"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
)

// GET /api/babies/:id/foods?limit=10
func ListFoods(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	babyID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid baby id"})
		return
	}
	limit, _ := strconv.Atoi(c.Query("limit"))

	svc := services.NewFeedingService(services.NewBabyService())
	foods, err := svc.ListFoods(uid, babyID, limit)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, foods)
}

// POST /api/babies/:id/foods
func AddFood(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	babyID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid baby id"})
		return
	}

	var input services.FeedingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFeedingService(services.NewBabyService())
	food, err := svc.AddFood(uid, babyID, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// POST /api/babies/:id/foods-and-blood-sugar
//
// Logs a feeding and the blood sugar reading taken alongside it as one
// unit; either both rows land or neither does.
func LogFoodWithBloodSugar(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	babyID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid baby id"})
		return
	}

	var input services.FeedingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewFeedingService(services.NewBabyService())
	food, reading, err := svc.LogFeedingWithBloodSugar(uid, babyID, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}

	resp := gin.H{
		"message":           "Feeding and blood sugar logs added successfully",
		"food":              food,
		"bloodSugarCreated": reading != nil,
	}
	if reading != nil {
		resp["bloodSugar"] = reading
	}
	c.JSON(http.StatusCreated, resp)
}

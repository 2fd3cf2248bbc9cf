package controllers

import (
	"net/http"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
)

// GET /api/babies/:id/blood-sugars
func ListBloodSugars(c *gin.Context) {
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

	svc := services.NewBloodSugarService(services.NewBabyService())
	readings, err := svc.ListBloodSugars(uid, babyID)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, readings)
}

// POST /api/babies/:id/blood-sugars
func AddBloodSugar(c *gin.Context) {
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

	var input services.BloodSugarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewBloodSugarService(services.NewBabyService())
	reading, err := svc.CreateBloodSugar(uid, babyID, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, reading)
}

// PUT /api/blood-sugars/:id
func UpdateBloodSugar(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	readingID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	var input services.BloodSugarInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewBloodSugarService(services.NewBabyService())
	reading, err := svc.UpdateBloodSugar(uid, readingID, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reading)
}

// DELETE /api/blood-sugars/:id
func DeleteBloodSugar(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	readingID, ok := idParam(c, "id")
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid record id"})
		return
	}

	svc := services.NewBloodSugarService(services.NewBabyService())
	if err := svc.DeleteBloodSugar(uid, readingID); err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Blood sugar record deleted"})
}

package controllers

import (
	"encoding/base64"
	"io"
	"net/http"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-gonic/gin"
)

func ListBabies(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	babies, err := services.NewBabyService().ListBabies(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching babies"})
		return
	}
	c.JSON(http.StatusOK, babies)
}

// CreateBaby takes a multipart form: name, birthdate, gender and an
// optional image file that is stored as base64.
func CreateBaby(c *gin.Context) {
	uid, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	name := c.PostForm("name")
	gender := c.PostForm("gender")
	birthdate, err := parseTimeParam(c.PostForm("birthdate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid birthdate"})
		return
	}

	imageBase64 := ""
	if file, err := c.FormFile("image"); err == nil {
		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
			return
		}
		defer f.Close()
		raw, err := io.ReadAll(f)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "could not read image"})
			return
		}
		imageBase64 = base64.StdEncoding.EncodeToString(raw)
	}

	baby, err := services.NewBabyService().CreateBaby(uid, name, birthdate, gender, imageBase64)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, baby)
}

func GetBaby(c *gin.Context) {
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

	baby, err := services.NewBabyService().GetOwnedBaby(uid, babyID)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, baby)
}

func UpdateBaby(c *gin.Context) {
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

	var input services.UpdateBabyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	baby, err := services.NewBabyService().UpdateBaby(uid, babyID, input)
	if err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, baby)
}

func DeleteBaby(c *gin.Context) {
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

	if err := services.NewBabyService().DeleteBaby(uid, babyID); err != nil {
		c.JSON(statusForServiceError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Baby deleted successfully"})
}

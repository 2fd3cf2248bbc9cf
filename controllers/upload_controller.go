package controllers

import (
	"net/http"

	"github.com/LielBuchnik/EmmaTrackerAPI/services"
	"github.com/LielBuchnik/EmmaTrackerAPI/utils"

	"github.com/gin-gonic/gin"
)

type UploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /api/upload  { "image_base64": "data:image/...;base64,..." }
//
// Screens the photo, stores it in S3 and returns a public URL for
// clients that prefer linking over inline base64.
func UploadBabyPhoto(c *gin.Context) {
	var req UploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	photoSvc, err := services.NewPhotoService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	labels, err := photoSvc.Moderate(req.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not process image", "detail": err.Error()})
		return
	}
	if len(labels) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Image rejected", "labels": labels})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "upload")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

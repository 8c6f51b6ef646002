package controllers

import (
	"net/http"

	"github.com/itsnikhil24/SurplusX/utils"

	"github.com/gin-gonic/gin"
)

type ImageUploadRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// POST /api/uploads/image
func UploadImage(c *gin.Context) {
	var req ImageUploadRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, "general/upload")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Upload failed", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

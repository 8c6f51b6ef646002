package controllers

import (
	"net/http"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/models"

	"github.com/gin-gonic/gin"
)

// GET /api/user/profile
func GetProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	c.JSON(http.StatusOK, userPayload(&user))
}

type UpdateProfileInput struct {
	Name             string       `json:"name"`
	Phone            string       `json:"phone"`
	OrganizationName string       `json:"organizationName"`
	Address          string       `json:"address"`
	Location         *Coordinates `json:"location"`
}

// PUT /api/user/profile
func UpdateProfile(c *gin.Context) {
	var user models.User
	if err := config.DB.First(&user, c.GetUint("userID")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if input.Name != "" {
		user.Name = input.Name
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.OrganizationName != "" {
		user.OrganizationName = input.OrganizationName
	}
	if input.Address != "" {
		user.Address = input.Address
	}
	if input.Location != nil {
		user.Latitude = input.Location.Latitude
		user.Longitude = input.Location.Longitude
	}

	if err := config.DB.Save(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "profile updated successfully", "user": userPayload(&user)})
}

package controllers

import (
	"net/http"

	"github.com/itsnikhil24/SurplusX/services"

	"github.com/gin-gonic/gin"
)

type NgoRequestInput struct {
	FoodType      string       `json:"foodType" binding:"required,oneof=Veg Non-Veg Both"`
	FoodCategory  string       `json:"foodCategory" binding:"required,oneof=Cooked Raw Packed"`
	Quantity      float64      `json:"quantity" binding:"required,gt=0"`
	Location      string       `json:"location" binding:"required"`
	Coordinates   *Coordinates `json:"coordinates"`
	RequiredDate  string       `json:"requiredDate" binding:"required"`
	Description   string       `json:"description"`
	TotalCapacity float64      `json:"totalCapacity" binding:"required,gt=0"`
}

// POST /api/ngo/request
func CreateNgoRequest(c *gin.Context) {
	var input NgoRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please fill all required fields"})
		return
	}

	required, err := parseDate(input.RequiredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid requiredDate"})
		return
	}

	user, err := services.FindUserByID(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "user not found"})
		return
	}

	in := services.NgoRequestInput{
		FoodType:      input.FoodType,
		FoodCategory:  input.FoodCategory,
		Quantity:      input.Quantity,
		Location:      input.Location,
		RequiredDate:  required,
		Description:   input.Description,
		TotalCapacity: input.TotalCapacity,
	}
	if input.Coordinates != nil {
		in.Latitude = input.Coordinates.Latitude
		in.Longitude = input.Coordinates.Longitude
	}

	req, err := services.CreateNgoRequest(user, in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "NGO Request Created Successfully",
		"data":    req,
	})
}

// GET /api/ngo/requests
func GetNgoRequests(c *gin.Context) {
	reqs, err := services.ListPendingRequests()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(reqs),
		"data":    reqs,
	})
}

// GET /api/ngo/my-requests
func GetMyNgoRequests(c *gin.Context) {
	reqs, err := services.ListRequestsByNgo(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(reqs),
		"data":    reqs,
	})
}

package controllers

import (
	"net/http"
	"time"

	"github.com/itsnikhil24/SurplusX/services"
	"github.com/itsnikhil24/SurplusX/utils"

	"github.com/gin-gonic/gin"
)

type UploadSurplusInput struct {
	ItemName           string       `json:"itemName" binding:"required"`
	Quantity           float64      `json:"quantity" binding:"required,gt=0"`
	Unit               string       `json:"unit"`
	ExpiryDate         string       `json:"expiryDate" binding:"required"`
	PricePerUnit       float64      `json:"pricePerUnit" binding:"required"`
	RestaurantLocation string       `json:"restaurantLocation"`
	Coordinates        *Coordinates `json:"coordinates"`
	PhotoBase64        string       `json:"photoBase64"`
}

// parseDate accepts both RFC3339 timestamps and bare YYYY-MM-DD dates, which
// is what the upload form sends.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02", s, time.Local)
}

// POST /api/surplus/upload
func UploadSurplus(c *gin.Context) {
	var input UploadSurplusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	expiry, err := parseDate(input.ExpiryDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid expiryDate"})
		return
	}

	in := services.SurplusInput{
		ItemName:           input.ItemName,
		Quantity:           input.Quantity,
		Unit:               input.Unit,
		ExpiryDate:         expiry,
		PricePerUnit:       input.PricePerUnit,
		RestaurantLocation: input.RestaurantLocation,
	}
	if input.Coordinates != nil {
		in.Latitude = input.Coordinates.Latitude
		in.Longitude = input.Coordinates.Longitude
	}

	if input.PhotoBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.PhotoBase64, "item")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Photo upload failed", "error": err.Error()})
			return
		}
		in.PhotoURL = url
	}

	item, err := services.CreateSurplus(c.GetUint("userID"), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Surplus uploaded successfully",
		"decision": item.Decision,
		"surplus":  item,
	})
}

type UpdateStockInput struct {
	SurplusID uint   `json:"surplusId" binding:"required"`
	NewState  string `json:"newState" binding:"required"`
}

// POST /api/surplus/update-stock
func UpdateStockState(c *gin.Context) {
	var input UpdateStockInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "surplusId and newState are required"})
		return
	}

	item, err := services.UpdateStockState(c.GetUint("userID"), input.SurplusID, input.NewState)
	if err != nil {
		switch err {
		case services.ErrInvalidStockState:
			c.JSON(http.StatusBadRequest, gin.H{"message": "newState must be 'sold' or 'donated'"})
		case services.ErrSurplusNotFound:
			c.JSON(http.StatusNotFound, gin.H{"message": "Surplus item not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item marked as '" + input.NewState + "'",
		"surplus": item,
	})
}

// GET /api/surplus/my-items
func GetMySurplus(c *gin.Context) {
	items, err := services.ListMyDonations(c.GetUint("userID"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// GET /api/surplus/marketplace
func GetMarketplace(c *gin.Context) {
	items, err := services.ListMarketplace()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(items),
		"data":    items,
	})
}

// GET /api/surplus/recent
func GetRecentSurplus(c *gin.Context) {
	items, err := services.ListRecent(10)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": items})
}

type SuggestNameInput struct {
	PhotoBase64 string `json:"photoBase64" binding:"required"`
}

// POST /api/surplus/suggest-name
func SuggestItemName(c *gin.Context) {
	var input SuggestNameInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "photoBase64 is required"})
		return
	}

	rek, err := services.NewRekognitionService()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	label, err := rek.SuggestItemName(input.PhotoBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"suggestion": label})
}

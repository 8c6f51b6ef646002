package controllers

import (
	"net/http"

	"github.com/itsnikhil24/SurplusX/models"
	"github.com/itsnikhil24/SurplusX/services"
	"github.com/itsnikhil24/SurplusX/utils"

	"github.com/gin-gonic/gin"
)

// Coordinates is the {latitude, longitude} payload shared by register,
// upload and NGO request bodies. Both fields optional.
type Coordinates struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type RegisterInput struct {
	Name             string       `json:"name" binding:"required"`
	Email            string       `json:"email" binding:"required,email"`
	Password         string       `json:"password" binding:"required"`
	Role             string       `json:"role" binding:"required"`
	Phone            string       `json:"phone"`
	OrganizationName string       `json:"organizationName"`
	Address          string       `json:"address"`
	Location         *Coordinates `json:"location"`
}

func userPayload(u *models.User) gin.H {
	return gin.H{
		"id":               u.ID,
		"name":             u.Name,
		"email":            u.Email,
		"role":             u.Role,
		"phone":            u.Phone,
		"organizationName": u.OrganizationName,
		"address":          u.Address,
		"location": gin.H{
			"latitude":  u.Latitude,
			"longitude": u.Longitude,
		},
	}
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide all required fields"})
		return
	}

	in := services.RegisterInput{
		Name:             input.Name,
		Email:            input.Email,
		Password:         input.Password,
		Role:             input.Role,
		Phone:            input.Phone,
		OrganizationName: input.OrganizationName,
		Address:          input.Address,
	}
	if input.Location != nil {
		in.Latitude = input.Location.Latitude
		in.Longitude = input.Location.Longitude
	}

	user, err := services.RegisterUser(in)
	if err != nil {
		switch err {
		case services.ErrInvalidRole:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid role"})
		case services.ErrUserExists:
			c.JSON(http.StatusBadRequest, gin.H{"message": "User already exists"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error", "error": err.Error()})
		}
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"user":    userPayload(user),
	})
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide email and password"})
		return
	}

	user, err := services.AuthenticateUser(input.Email, input.Password)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid Credentials"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Could not generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user":    userPayload(user),
	})
}

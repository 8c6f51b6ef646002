package services

import (
	"errors"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/models"
	"github.com/itsnikhil24/SurplusX/utils"
)

var (
	ErrInvalidRole        = errors.New("invalid role")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type RegisterInput struct {
	Name             string
	Email            string
	Password         string
	Role             string
	Phone            string
	OrganizationName string
	Address          string
	Latitude         *float64
	Longitude        *float64
}

func RegisterUser(in RegisterInput) (*models.User, error) {
	if !models.ValidRole(in.Role) {
		return nil, ErrInvalidRole
	}

	var existing models.User
	if err := config.DB.Where("email = ?", in.Email).First(&existing).Error; err == nil {
		return nil, ErrUserExists
	}

	hashedPassword, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:             in.Name,
		Email:            in.Email,
		Password:         hashedPassword,
		Role:             in.Role,
		Phone:            in.Phone,
		OrganizationName: in.OrganizationName,
		Address:          in.Address,
		Latitude:         in.Latitude,
		Longitude:        in.Longitude,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return nil, err
	}

	_ = utils.SendWelcomeEmail(user.Email, user.Name, user.Role)

	return &user, nil
}

func AuthenticateUser(email, password string) (*models.User, error) {
	var user models.User
	if err := config.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

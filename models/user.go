package models

import (
	"gorm.io/gorm"
)

const (
	RoleRestaurant = "restaurant"
	RoleNgo        = "ngo"
	RoleAdmin      = "admin"
)

type User struct {
	gorm.Model
	Name             string `gorm:"not null"`
	Email            string `gorm:"uniqueIndex;not null"`
	Password         string `gorm:"not null"`
	Role             string `gorm:"size:16;not null"` // restaurant | ngo | admin
	Phone            string
	OrganizationName string
	Address          string
	Latitude         *float64
	Longitude        *float64
}

func ValidRole(role string) bool {
	return role == RoleRestaurant || role == RoleNgo || role == RoleAdmin
}

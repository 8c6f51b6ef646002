package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	FoodTypeVeg    = "Veg"
	FoodTypeNonVeg = "Non-Veg"
	FoodTypeBoth   = "Both"

	RequestPending   = "pending"
	RequestFulfilled = "fulfilled"
	RequestCancelled = "cancelled"
)

// NgoRequest is a standing demand declaration from an NGO. It accumulates
// load from allocations until CurrentLoad reaches TotalCapacity, at which
// point it flips to "fulfilled".
type NgoRequest struct {
	gorm.Model
	NgoID   uint   `gorm:"index;not null"`
	NgoName string `gorm:"not null"`

	FoodType     string  `gorm:"size:8;not null"`  // Veg | Non-Veg | Both
	FoodCategory string  `gorm:"size:8;not null"`  // Cooked | Raw | Packed
	Quantity     float64 `gorm:"not null"`
	Location     string  `gorm:"not null"`
	Latitude     *float64
	Longitude    *float64
	RequiredDate time.Time `gorm:"not null"`
	Description  string

	TotalCapacity float64 `gorm:"not null"`
	CurrentLoad   float64 `gorm:"default:0"`

	IsActive bool   `gorm:"default:true"`
	Status   string `gorm:"size:16;default:pending"` // pending | fulfilled | cancelled
}

func (r *NgoRequest) FreeCapacity() float64 {
	return r.TotalCapacity - r.CurrentLoad
}

func (r *NgoRequest) HasCoordinates() bool {
	return r.Latitude != nil && r.Longitude != nil
}

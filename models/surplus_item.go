package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	DecisionSell   = "sell"
	DecisionDonate = "donate"

	StateInStock = "inStock"
	StateSold    = "sold"
	StateDonated = "donated"

	AllocationUnassigned = "unassigned"
	AllocationAssigned   = "assigned"
	AllocationDelivered  = "delivered"
)

// SurplusItem is one batch of leftover food posted by a restaurant.
// Decision is computed at upload time by the pricing heuristic; only
// "donate" items with AllocationStatus "unassigned" are eligible for
// smart allocation.
type SurplusItem struct {
	gorm.Model
	RestaurantID uint `gorm:"index;not null"`

	ItemName     string    `gorm:"not null"`
	Quantity     float64   `gorm:"not null"`
	Unit         string    `gorm:"size:16;default:kg"`
	ExpiryDate   time.Time `gorm:"not null"`
	PricePerUnit float64

	SuggestedDecision string `gorm:"size:8"`
	Decision          string `gorm:"size:8"`
	Status            string `gorm:"size:16;default:pending"` // pending | confirmed
	CurrentState      string `gorm:"size:16;default:inStock"` // inStock | sold | donated

	AllocationStatus string `gorm:"size:16;default:unassigned"`
	AssignedNgoID    *uint  `gorm:"index"` // set exactly once, by the allocator

	RestaurantLocation string
	Latitude           *float64
	Longitude          *float64
	PhotoURL           string
}

// Items without coordinates are excluded from distance-aware allocation.
func (s *SurplusItem) HasCoordinates() bool {
	return s.Latitude != nil && s.Longitude != nil
}

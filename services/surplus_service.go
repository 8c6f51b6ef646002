package services

import (
	"errors"
	"time"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/models"

	"gorm.io/gorm"
)

var ErrInvalidStockState = errors.New("newState must be 'sold' or 'donated'")

// DecisionScore is the upload-time pricing heuristic: bigger lots, longer
// shelf life and pricier food push toward "sell". Buckets and weights are
// product contract.
func DecisionScore(quantity float64, expiryDate time.Time, pricePerUnit float64) float64 {
	quantityScore := 5.0
	if quantity <= 50 {
		quantityScore = 1
	} else if quantity <= 100 {
		quantityScore = 3
	}

	daysLeft := time.Until(expiryDate).Hours() / 24
	expiryScore := 5.0
	if daysLeft <= 1 {
		expiryScore = 1
	} else if daysLeft <= 5 {
		expiryScore = 3
	}

	demandScore := 5.0
	if pricePerUnit <= 10 {
		demandScore = 1
	} else if pricePerUnit <= 50 {
		demandScore = 3
	}

	return quantityScore*0.4 + expiryScore*0.4 + demandScore*0.2
}

func SuggestDecision(score float64) string {
	if score >= 7 {
		return models.DecisionSell
	}
	return models.DecisionDonate
}

type SurplusInput struct {
	ItemName           string
	Quantity           float64
	Unit               string
	ExpiryDate         time.Time
	PricePerUnit       float64
	RestaurantLocation string
	Latitude           *float64
	Longitude          *float64
	PhotoURL           string
}

// CreateSurplus stores a new item with the automatically computed decision.
func CreateSurplus(restaurantID uint, in SurplusInput) (*models.SurplusItem, error) {
	if in.Unit == "" {
		in.Unit = "kg"
	}

	decision := SuggestDecision(DecisionScore(in.Quantity, in.ExpiryDate, in.PricePerUnit))

	item := models.SurplusItem{
		RestaurantID:       restaurantID,
		ItemName:           in.ItemName,
		Quantity:           in.Quantity,
		Unit:               in.Unit,
		ExpiryDate:         in.ExpiryDate,
		PricePerUnit:       in.PricePerUnit,
		SuggestedDecision:  decision,
		Decision:           decision,
		Status:             "confirmed",
		CurrentState:       models.StateInStock,
		AllocationStatus:   models.AllocationUnassigned,
		RestaurantLocation: in.RestaurantLocation,
		Latitude:           in.Latitude,
		Longitude:          in.Longitude,
		PhotoURL:           in.PhotoURL,
	}

	if err := config.DB.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateStockState marks an item sold or donated. Only the owning
// restaurant may update it.
func UpdateStockState(restaurantID, surplusID uint, newState string) (*models.SurplusItem, error) {
	if newState != models.StateSold && newState != models.StateDonated {
		return nil, ErrInvalidStockState
	}

	var item models.SurplusItem
	err := config.DB.
		Where("id = ? AND restaurant_id = ?", surplusID, restaurantID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurplusNotFound
		}
		return nil, err
	}

	item.CurrentState = newState
	if err := config.DB.Save(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ListMyDonations returns the restaurant's donate-flagged items, newest first.
func ListMyDonations(restaurantID uint) ([]models.SurplusItem, error) {
	var items []models.SurplusItem
	err := config.DB.
		Where("restaurant_id = ? AND decision = ?", restaurantID, models.DecisionDonate).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

// ListMarketplace returns sell-flagged items still in stock, for the public
// marketplace page.
func ListMarketplace() ([]models.SurplusItem, error) {
	var items []models.SurplusItem
	err := config.DB.
		Where("decision = ? AND current_state = ?", models.DecisionSell, models.StateInStock).
		Order("created_at desc").
		Find(&items).Error
	return items, err
}

// ListRecent returns the latest uploads for the dashboard widget.
func ListRecent(limit int) ([]models.SurplusItem, error) {
	var items []models.SurplusItem
	err := config.DB.
		Order("created_at desc").
		Limit(limit).
		Find(&items).Error
	return items, err
}

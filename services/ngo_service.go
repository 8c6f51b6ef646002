package services

import (
	"time"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/models"
)

type NgoRequestInput struct {
	FoodType      string
	FoodCategory  string
	Quantity      float64
	Location      string
	Latitude      *float64
	Longitude     *float64
	RequiredDate  time.Time
	Description   string
	TotalCapacity float64
}

// CreateNgoRequest stores a new demand request for the given NGO user.
// Coordinates are optional; requests without them never participate in
// distance-aware allocation.
func CreateNgoRequest(ngo *models.User, in NgoRequestInput) (*models.NgoRequest, error) {
	name := ngo.OrganizationName
	if name == "" {
		name = ngo.Name
	}

	req := models.NgoRequest{
		NgoID:         ngo.ID,
		NgoName:       name,
		FoodType:      in.FoodType,
		FoodCategory:  in.FoodCategory,
		Quantity:      in.Quantity,
		Location:      in.Location,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		RequiredDate:  in.RequiredDate,
		Description:   in.Description,
		TotalCapacity: in.TotalCapacity,
		IsActive:      true,
		Status:        models.RequestPending,
	}

	if err := config.DB.Create(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// ListPendingRequests returns active pending requests for the allocation
// screen and the hunger map.
func ListPendingRequests() ([]models.NgoRequest, error) {
	var reqs []models.NgoRequest
	err := config.DB.
		Where("status = ? AND is_active = ?", models.RequestPending, true).
		Order("required_date asc").
		Find(&reqs).Error
	return reqs, err
}

// ListRequestsByNgo returns an NGO's own requests, newest first.
func ListRequestsByNgo(ngoID uint) ([]models.NgoRequest, error) {
	var reqs []models.NgoRequest
	err := config.DB.
		Where("ngo_id = ?", ngoID).
		Order("created_at desc").
		Find(&reqs).Error
	return reqs, err
}

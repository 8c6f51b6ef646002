package services

import (
	"github.com/itsnikhil24/SurplusX/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// DashboardStats feeds the public dashboard and impact pages.
type DashboardStats struct {
	TotalItems     int64   `json:"total_items"`
	ItemsForSale   int64   `json:"items_for_sale"`
	ItemsSold      int64   `json:"items_sold"`
	ItemsDonated   int64   `json:"items_donated"`
	ItemsAssigned  int64   `json:"items_assigned"`
	KgDonated      float64 `json:"kg_donated"`
	PendingNgoAsks int64   `json:"pending_ngo_requests"`
	NgosFulfilled  int64   `json:"ngos_fulfilled"`
}

func (s *StatsService) Dashboard() (*DashboardStats, error) {
	var out DashboardStats

	item := s.db.Model(&models.SurplusItem{})
	if err := item.Count(&out.TotalItems).Error; err != nil {
		return nil, err
	}
	s.db.Model(&models.SurplusItem{}).
		Where("decision = ? AND current_state = ?", models.DecisionSell, models.StateInStock).
		Count(&out.ItemsForSale)
	s.db.Model(&models.SurplusItem{}).
		Where("current_state = ?", models.StateSold).
		Count(&out.ItemsSold)
	s.db.Model(&models.SurplusItem{}).
		Where("current_state = ?", models.StateDonated).
		Count(&out.ItemsDonated)
	s.db.Model(&models.SurplusItem{}).
		Where("allocation_status = ?", models.AllocationAssigned).
		Count(&out.ItemsAssigned)

	var kg struct{ Total float64 }
	if err := s.db.Model(&models.SurplusItem{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("allocation_status IN ?", []string{models.AllocationAssigned, models.AllocationDelivered}).
		Scan(&kg).Error; err != nil {
		return nil, err
	}
	out.KgDonated = kg.Total

	s.db.Model(&models.NgoRequest{}).
		Where("status = ? AND is_active = ?", models.RequestPending, true).
		Count(&out.PendingNgoAsks)
	s.db.Model(&models.NgoRequest{}).
		Where("status = ?", models.RequestFulfilled).
		Count(&out.NgosFulfilled)

	return &out, nil
}

package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/itsnikhil24/SurplusX/models"
	"github.com/itsnikhil24/SurplusX/utils"

	"gorm.io/gorm"
)

// Sentinel errors for each rejectable precondition; the allocation
// controller maps these to distinct user-facing responses.
var (
	ErrSurplusNotFound      = errors.New("surplus item not found")
	ErrNotMarkedForDonation = errors.New("this item is not marked for donation")
	ErrAlreadyAllocated     = errors.New("item already allocated")
	ErrNoPendingRequests    = errors.New("no NGO requests available")
	ErrNoSuitableNgo        = errors.New("no suitable NGO found")
)

// ScoringConfig holds the allocation weights and bucket thresholds. The
// defaults are product contract; tests may substitute their own values.
type ScoringConfig struct {
	DistanceWeight float64
	UrgencyWeight  float64
	CapacityWeight float64
	FoodTypeWeight float64
	ExpiryWeight   float64

	// Distance score is max(0, MaxDistanceKm - distance).
	MaxDistanceKm float64

	// Urgency buckets over hours until the request's required date.
	UrgentHours float64 // under this scores 100
	SoonHours   float64 // under this scores 70, else 40

	// Expiry buckets over hours until the donation expires.
	ExpiryCriticalHours float64 // under this scores 100
	ExpirySoonHours     float64 // under this scores 70, else 40

	MatchedFoodScore  float64 // "Both", or "Veg" request for a veg item
	FallbackFoodScore float64
}

func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		DistanceWeight: 0.30,
		UrgencyWeight:  0.25,
		CapacityWeight: 0.20,
		FoodTypeWeight: 0.10,
		ExpiryWeight:   0.15,

		MaxDistanceKm: 100,

		UrgentHours: 24,
		SoonHours:   72,

		ExpiryCriticalHours: 6,
		ExpirySoonHours:     24,

		MatchedFoodScore:  50,
		FallbackFoodScore: 20,
	}
}

type AllocationResult struct {
	SurplusID uint   `json:"surplusId"`
	NgoID     uint   `json:"ngoId"`
	NgoName   string `json:"ngoName"`
	Score     int    `json:"score"`
}

type AllocationService struct {
	db  *gorm.DB
	cfg ScoringConfig
}

func NewAllocationService(db *gorm.DB, cfg ScoringConfig) *AllocationService {
	return &AllocationService{db: db, cfg: cfg}
}

// CompositeScore computes the weighted desirability of routing the donation
// to the given request. Both sides must carry coordinates.
func (s *AllocationService) CompositeScore(donation *models.SurplusItem, ngo *models.NgoRequest, now time.Time) float64 {
	distance := utils.HaversineKm(
		*donation.Latitude, *donation.Longitude,
		*ngo.Latitude, *ngo.Longitude,
	)
	distanceScore := math.Max(0, s.cfg.MaxDistanceKm-distance)

	hoursLeft := ngo.RequiredDate.Sub(now).Hours()
	urgencyScore := 40.0
	if hoursLeft < s.cfg.UrgentHours {
		urgencyScore = 100
	} else if hoursLeft < s.cfg.SoonHours {
		urgencyScore = 70
	}

	capacityScore := ngo.FreeCapacity() / ngo.TotalCapacity * 100

	foodScore := s.cfg.FallbackFoodScore
	if ngo.FoodType == models.FoodTypeBoth {
		foodScore = s.cfg.MatchedFoodScore
	} else if strings.Contains(strings.ToLower(donation.ItemName), "veg") && ngo.FoodType == models.FoodTypeVeg {
		foodScore = s.cfg.MatchedFoodScore
	}

	expiryHours := donation.ExpiryDate.Sub(now).Hours()
	expiryScore := 40.0
	if expiryHours < s.cfg.ExpiryCriticalHours {
		expiryScore = 100
	} else if expiryHours < s.cfg.ExpirySoonHours {
		expiryScore = 70
	}

	return distanceScore*s.cfg.DistanceWeight +
		urgencyScore*s.cfg.UrgencyWeight +
		capacityScore*s.cfg.CapacityWeight +
		foodScore*s.cfg.FoodTypeWeight +
		expiryScore*s.cfg.ExpiryWeight
}

// Allocate routes one donation-flagged surplus item to the best pending NGO
// request. Candidates without free capacity, or where either side lacks
// coordinates, are skipped rather than scored. Ties keep the earlier
// candidate (strict > comparison).
//
// On success the donation and the winning request are updated inside one
// transaction, so a failed second write cannot leave an assigned donation
// pointing at a request whose load was never incremented.
func (s *AllocationService) Allocate(surplusID uint) (*AllocationResult, error) {
	var donation models.SurplusItem
	if err := s.db.First(&donation, surplusID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSurplusNotFound
		}
		return nil, err
	}

	if donation.Decision != models.DecisionDonate {
		return nil, ErrNotMarkedForDonation
	}
	if donation.AllocationStatus != models.AllocationUnassigned {
		return nil, ErrAlreadyAllocated
	}

	var requests []models.NgoRequest
	if err := s.db.
		Where("status = ? AND is_active = ?", models.RequestPending, true).
		Order("id").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	if len(requests) == 0 {
		return nil, ErrNoPendingRequests
	}

	now := time.Now()
	bestScore := -1.0
	var best *models.NgoRequest

	for i := range requests {
		ngo := &requests[i]

		if ngo.FreeCapacity() <= 0 {
			continue
		}
		if !donation.HasCoordinates() || !ngo.HasCoordinates() {
			continue
		}

		score := s.CompositeScore(&donation, ngo, now)
		if score > bestScore {
			bestScore = score
			best = ngo
		}
	}

	if best == nil {
		return nil, ErrNoSuitableNgo
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		donation.AssignedNgoID = &best.ID
		donation.AllocationStatus = models.AllocationAssigned
		if err := tx.Save(&donation).Error; err != nil {
			return fmt.Errorf("saving donation: %w", err)
		}

		best.CurrentLoad += donation.Quantity
		if best.CurrentLoad >= best.TotalCapacity {
			best.Status = models.RequestFulfilled
		}
		if err := tx.Save(best).Error; err != nil {
			return fmt.Errorf("saving NGO request: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("allocation persistence failed for surplus %d: %v", surplusID, err)
		return nil, err
	}

	result := &AllocationResult{
		SurplusID: donation.ID,
		NgoID:     best.ID,
		NgoName:   best.NgoName,
		Score:     int(math.Round(bestScore)),
	}

	s.notifyAssigned(&donation, best)

	return result, nil
}

// notifyAssigned fans the allocation out to the NGO user: alert row,
// websocket broadcast, push and email. Best effort only.
func (s *AllocationService) notifyAssigned(donation *models.SurplusItem, ngo *models.NgoRequest) {
	EmitAllocationAssigned(ngo.NgoID, donation, ngo)

	var user models.User
	if err := s.db.First(&user, ngo.NgoID).Error; err != nil {
		return
	}
	if err := utils.SendAllocationEmail(user.Email, ngo.NgoName, donation.ItemName, donation.Quantity, donation.Unit); err != nil {
		log.Printf("allocation email to %s failed: %v", user.Email, err)
	}
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/itsnikhil24/SurplusX/services"

	"github.com/gin-gonic/gin"
)

type AllocationController struct {
	Svc *services.AllocationService
}

func NewAllocationController(svc *services.AllocationService) *AllocationController {
	return &AllocationController{Svc: svc}
}

type smartAllocateReq struct {
	SurplusID uint `json:"surplusId"`
}

// POST /api/allocation/smart-allocate
func (ac *AllocationController) SmartAllocate(c *gin.Context) {
	var req smartAllocateReq
	if err := c.ShouldBindJSON(&req); err != nil || req.SurplusID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "surplusId is required"})
		return
	}

	result, err := ac.Svc.Allocate(req.SurplusID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSurplusNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Surplus item not found"})
		case errors.Is(err, services.ErrNotMarkedForDonation):
			c.JSON(http.StatusBadRequest, gin.H{"message": "This item is not marked for donation"})
		case errors.Is(err, services.ErrAlreadyAllocated):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Item already allocated"})
		case errors.Is(err, services.ErrNoPendingRequests):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No NGO requests available"})
		case errors.Is(err, services.ErrNoSuitableNgo):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No suitable NGO found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "Smart Allocation Completed",
		"surplusId": result.SurplusID,
		"ngoId":     result.NgoID,
		"ngoName":   result.NgoName,
		"score":     result.Score,
	})
}

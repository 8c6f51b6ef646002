// controllers/stats_controller.go
package controllers

import (
	"net/http"

	"github.com/itsnikhil24/SurplusX/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	Svc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{Svc: svc}
}

// GET /api/surplus/dashboard/stats
func (sc *StatsController) GetDashboardStats(c *gin.Context) {
	out, err := sc.Svc.Dashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, out)
}

package services

import (
	"testing"

	"github.com/itsnikhil24/SurplusX/models"

	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := setupTestDB(t)
	svc := NewStatsService(db)

	makeDonation(db, t, nil)
	makeDonation(db, t, func(s *models.SurplusItem) {
		s.Decision = models.DecisionSell
	})
	makeDonation(db, t, func(s *models.SurplusItem) {
		s.Quantity = 15
		s.AllocationStatus = models.AllocationAssigned
	})
	makeRequest(db, t, nil)
	makeRequest(db, t, func(r *models.NgoRequest) {
		r.Status = models.RequestFulfilled
	})

	out, err := svc.Dashboard()
	require.NoError(t, err)
	require.Equal(t, int64(3), out.TotalItems)
	require.Equal(t, int64(1), out.ItemsForSale)
	require.Equal(t, int64(1), out.ItemsAssigned)
	require.Equal(t, 15.0, out.KgDonated)
	require.Equal(t, int64(1), out.PendingNgoAsks)
	require.Equal(t, int64(1), out.NgosFulfilled)
}

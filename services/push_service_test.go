package services

import (
	"testing"

	"github.com/itsnikhil24/SurplusX/models"

	"github.com/stretchr/testify/require"
)

func TestAllocationPushPayload(t *testing.T) {
	ap := AllocationPush{
		SurplusID: 7,
		RequestID: 3,
		ItemName:  "Veg Biryani",
		Quantity:  12.5,
		Unit:      "kg",
	}

	title, body := ap.message()
	require.Equal(t, "Donation assigned", title)
	require.Equal(t, "12.50 kg of Veg Biryani assigned to you", body)

	data := ap.data()
	require.Equal(t, "allocation.assigned", data["type"])
	require.Equal(t, "7", data["surplusId"])
	require.Equal(t, "3", data["requestId"])
}

func TestEmitAllocationAssignedRecordsAlert(t *testing.T) {
	db := setupTestDB(t)

	hub := NewRealtimeHub()
	InitAlertDeps(db, hub, nil)
	t.Cleanup(func() { InitAlertDeps(nil, nil, nil) })

	donation := makeDonation(db, t, nil)
	req := makeRequest(db, t, nil)

	EmitAllocationAssigned(req.NgoID, donation, req)

	var alert models.Alert
	require.NoError(t, db.Where("user_id = ?", req.NgoID).First(&alert).Error)
	require.Equal(t, "allocation", alert.Type)
	require.Contains(t, alert.Message, "Veg Biryani")
	require.Contains(t, alert.Message, "10.00 kg")
}

package services

import (
	"fmt"
	"time"

	"github.com/itsnikhil24/SurplusX/models"
	"gorm.io/gorm"
)

type alertDeps struct {
	db *gorm.DB
	rt *RealtimeHub
	ps *PushService
}

var _alert alertDeps

func InitAlertDeps(db *gorm.DB, rt *RealtimeHub, ps *PushService) {
	_alert = alertDeps{db: db, rt: rt, ps: ps}
}

// recordAlert persists the alert row and broadcasts it over the websocket
// hub. Returns nil before InitAlertDeps runs.
func recordAlert(userID uint, typ, message string) *models.Alert {
	if _alert.db == nil {
		return nil
	}
	a := &models.Alert{UserID: userID, Type: typ, Message: message, CreatedAt: time.Now()}
	_ = _alert.db.Create(a).Error

	if _alert.rt != nil {
		_alert.rt.Broadcast(userID, map[string]any{
			"kind":  "alert.created",
			"alert": a,
		})
	}
	return a
}

// EmitAlert records an alert for the user and fans it out over the
// websocket hub and push. Safe to call anywhere; a no-op before
// InitAlertDeps runs.
func EmitAlert(userID uint, typ, message string) {
	a := recordAlert(userID, typ, message)
	if a == nil {
		return
	}
	if _alert.ps != nil {
		_alert.ps.PushToUser(userID, "SurplusX", message, map[string]string{
			"type": typ, "alertId": fmt.Sprintf("%d", a.ID),
		})
	}
}

// EmitAllocationAssigned is the assignment-specific fan-out: alert row,
// websocket event and a push carrying deep-link data for the donation.
func EmitAllocationAssigned(ngoID uint, donation *models.SurplusItem, req *models.NgoRequest) {
	msg := fmt.Sprintf("Donation assigned: %.2f %s of %s",
		donation.Quantity, donation.Unit, donation.ItemName)
	if recordAlert(ngoID, "allocation", msg) == nil {
		return
	}
	if _alert.ps != nil {
		_alert.ps.PushAllocationAssigned(ngoID, AllocationPush{
			SurplusID: donation.ID,
			RequestID: req.ID,
			ItemName:  donation.ItemName,
			Quantity:  donation.Quantity,
			Unit:      donation.Unit,
		})
	}
}

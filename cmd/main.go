package main

import (
	"log"
	"os"

	"github.com/itsnikhil24/SurplusX/config"
	"github.com/itsnikhil24/SurplusX/controllers"
	"github.com/itsnikhil24/SurplusX/routes"
	"github.com/itsnikhil24/SurplusX/services"
	"github.com/itsnikhil24/SurplusX/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()

	hub := services.NewRealtimeHub()

	push, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}

	services.InitAlertDeps(config.DB, hub, push)

	alloc := services.NewAllocationService(config.DB, services.DefaultScoringConfig())

	deps := routes.Deps{
		Allocation: controllers.NewAllocationController(alloc),
		Stats:      controllers.NewStatsController(services.NewStatsService(config.DB)),
		Realtime:   controllers.NewRealtimeController(hub),
	}
	if push != nil {
		deps.Devices = controllers.NewDeviceController(push)
	}

	r := routes.SetupRouter(deps)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

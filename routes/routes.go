package routes

import (
	"github.com/itsnikhil24/SurplusX/controllers"
	"github.com/itsnikhil24/SurplusX/middlewares"
	"github.com/itsnikhil24/SurplusX/models"

	"github.com/gin-gonic/gin"
)

// Deps carries the injected controllers. A nil field leaves its routes
// unregistered.
type Deps struct {
	Allocation *controllers.AllocationController
	Stats      *controllers.StatsController
	Realtime   *controllers.RealtimeController
	Devices    *controllers.DeviceController
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Surplus: public marketplace widgets plus restaurant-only management
	surplus := api.Group("/surplus")
	{
		surplus.GET("/marketplace", controllers.GetMarketplace)
		surplus.GET("/recent", controllers.GetRecentSurplus)
		if deps.Stats != nil {
			surplus.GET("/dashboard/stats", deps.Stats.GetDashboardStats)
		}

		restaurant := surplus.Group("")
		restaurant.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RoleRestaurant))
		{
			restaurant.POST("/upload", controllers.UploadSurplus)
			restaurant.POST("/update-stock", controllers.UpdateStockState)
			restaurant.POST("/suggest-name", controllers.SuggestItemName)
			restaurant.GET("/my-items", controllers.GetMySurplus)
		}
	}

	ngo := api.Group("/ngo")
	ngo.Use(middlewares.AuthMiddleware())
	{
		ngo.POST("/request", middlewares.RequireRoles(models.RoleNgo), controllers.CreateNgoRequest)
		ngo.GET("/my-requests", middlewares.RequireRoles(models.RoleNgo), controllers.GetMyNgoRequests)
		ngo.GET("/requests", middlewares.RequireRoles(models.RoleRestaurant, models.RoleAdmin), controllers.GetNgoRequests)
	}

	if deps.Allocation != nil {
		allocation := api.Group("/allocation")
		allocation.Use(middlewares.AuthMiddleware(), middlewares.RequireRoles(models.RoleRestaurant, models.RoleAdmin))
		{
			allocation.POST("/smart-allocate", deps.Allocation.SmartAllocate)
		}
	}

	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
	}

	uploads := api.Group("/uploads")
	uploads.Use(middlewares.AuthMiddleware())
	{
		uploads.POST("/image", controllers.UploadImage)
	}

	if deps.Realtime != nil {
		rt := api.Group("/realtime")
		rt.Use(middlewares.AuthMiddleware())
		{
			rt.GET("/alerts", deps.Realtime.AlertsWS)
		}
	}

	if deps.Devices != nil {
		devices := api.Group("/devices")
		devices.Use(middlewares.AuthMiddleware())
		{
			devices.POST("/register", deps.Devices.Register)
			devices.POST("/notifications/toggle", controllers.ToggleNotifications)
		}
	}

	return r
}

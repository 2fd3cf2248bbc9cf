package routes

import (
	"github.com/LielBuchnik/EmmaTrackerAPI/controllers"
	"github.com/LielBuchnik/EmmaTrackerAPI/middlewares"
	"github.com/LielBuchnik/EmmaTrackerAPI/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(rt *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()
	r.MaxMultipartMemory = 50 << 20 // photo uploads
	r.Use(cors.Default())

	// Public auth routes
	auth := r.Group("/api/auth")
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
	}

	// Protected routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/homepage", controllers.GetHomepage)
		api.GET("/user/settings", controllers.GetSettings)
		api.PUT("/user/settings", controllers.UpdateSettings)

		api.GET("/babies", controllers.ListBabies)
		api.POST("/babies", controllers.CreateBaby)
		api.GET("/babies/:id", controllers.GetBaby)
		api.PUT("/babies/:id", controllers.UpdateBaby)
		api.DELETE("/babies/:id", controllers.DeleteBaby)

		api.GET("/babies/:id/foods", controllers.ListFoods)
		api.POST("/babies/:id/foods", controllers.AddFood)
		api.POST("/babies/:id/foods-and-blood-sugar", controllers.LogFoodWithBloodSugar)

		api.GET("/babies/:id/blood-sugars", controllers.ListBloodSugars)
		api.POST("/babies/:id/blood-sugars", controllers.AddBloodSugar)
		api.PUT("/blood-sugars/:id", controllers.UpdateBloodSugar)
		api.DELETE("/blood-sugars/:id", controllers.DeleteBloodSugar)

		api.GET("/babies-all/blood-sugars", controllers.GetAllBloodSugars)
		api.GET("/babies-all/foods", controllers.GetAllFoods)

		api.POST("/upload", controllers.UploadBabyPhoto)

		api.POST("/devices", controllers.NewDeviceController(push).Register)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)
		api.GET("/alerts", controllers.ListAlerts)
		api.GET("/ws/alerts", controllers.NewRealtimeController(rt).AlertsWS)
	}

	return r
}

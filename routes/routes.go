package routes

import (
	"github.com/irsyadst/nutri-balance-backend/config"
	"github.com/irsyadst/nutri-balance-backend/controllers"
	"github.com/irsyadst/nutri-balance-backend/middlewares"
	"github.com/irsyadst/nutri-balance-backend/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	foodSvc := services.NewFoodService(config.DB)
	logSvc := services.NewLogService(config.DB, foodSvc)
	notifSvc := services.NewNotificationService(config.DB, hub)
	plannerSvc := services.NewPlannerService(config.DB, foodSvc, notifSvc)
	statsSvc := services.NewStatisticsService(config.DB)

	foodCtl := controllers.NewFoodController(foodSvc, logSvc, plannerSvc)
	statsCtl := controllers.NewStatisticsController(statsSvc)
	notifCtl := controllers.NewNotificationController(notifSvc)
	adminCtl := controllers.NewAdminController(foodSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Static admin dashboard
	r.Static("/admin", "./public")

	api := r.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/verify-otp", controllers.VerifyOTP)
		auth.POST("/login", controllers.Login)
	}

	user := api.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/notifications", notifCtl.List)
		user.POST("/notifications", notifCtl.Create)
		user.PUT("/notifications/:id", notifCtl.MarkRead)
		user.DELETE("/notifications/:id", notifCtl.Delete)
	}

	food := api.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.GET("/categories", foodCtl.GetCategories)
		food.GET("/search", foodCtl.SearchFoods)
		food.POST("/log", foodCtl.LogFood)
		food.GET("/log/history", foodCtl.GetHistory)
		food.DELETE("/log/:id", foodCtl.DeleteLog)
		food.GET("/meal-plan", foodCtl.GetMealPlan)
		food.POST("/generate-meal-plan", foodCtl.GenerateMealPlan)
	}

	stats := api.Group("/statistics")
	stats.Use(middlewares.AuthMiddleware())
	{
		stats.GET("/summary", statsCtl.GetSummary)
	}

	admin := api.Group("/admin")
	admin.POST("/login", controllers.AdminLogin)
	adminProtected := admin.Group("")
	adminProtected.Use(middlewares.AuthMiddleware(), middlewares.RequireAdmin())
	{
		adminProtected.GET("/users", adminCtl.GetAllUsers)
		adminProtected.POST("/users", adminCtl.CreateUser)
		adminProtected.PUT("/users/:id", adminCtl.UpdateUser)
		adminProtected.DELETE("/users/:id", adminCtl.DeleteUser)
		adminProtected.GET("/logs", adminCtl.GetAllLogs)
		adminProtected.GET("/foods", adminCtl.GetAllFoods)
		adminProtected.POST("/foods", adminCtl.CreateFood)
		adminProtected.PUT("/foods/:id", adminCtl.UpdateFood)
		adminProtected.DELETE("/foods/:id", adminCtl.DeleteFood)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/notifications", rtCtl.NotificationsWS)
	}

	return r
}

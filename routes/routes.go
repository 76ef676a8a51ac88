package routes

import (
	"dailydiet/config"
	"dailydiet/controllers"
	"dailydiet/middlewares"
	"dailydiet/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(cfg *config.Config, db *gorm.DB) *gin.Engine {
	r := gin.Default()

	authSvc := services.NewAuthService(db, cfg.JWTSecret)
	mealSvc := services.NewMealService(db)
	statsSvc := services.NewStatisticsService(db)

	// Public user routes
	users := r.Group("/users")
	{
		users.POST("", controllers.CreateUser(authSvc))
		users.POST("/authenticate", controllers.AuthenticateUser(authSvc))
	}

	// Protected meal routes
	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware(db, cfg.JWTSecret))
	{
		meals.POST("", controllers.CreateMeal(mealSvc))
		meals.GET("", controllers.ListMeals(mealSvc))
		meals.GET("/statistics", controllers.GetStatistics(statsSvc))
		meals.GET("/:id", controllers.GetMeal(mealSvc))
		meals.PUT("/:id", controllers.UpdateMeal(mealSvc))
		meals.DELETE("/:id", controllers.DeleteMeal(mealSvc))
	}

	return r
}

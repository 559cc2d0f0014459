package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/bites-backend/internal/handlers"
)

type RouterConfig struct {
	RestaurantHandler *handlers.RestaurantHandler
	CuisineHandler    *handlers.CuisineHandler
	WeatherHandler    *handlers.WeatherHandler
	RestaurantExists  gin.HandlerFunc
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api/v1")
	{
		restaurants := api.Group("/restaurants")
		restaurants.POST("", cfg.RestaurantHandler.CreateRestaurant)
		restaurants.GET("/top", cfg.RestaurantHandler.TopRestaurants)

		byID := restaurants.Group("/:restaurantId")
		byID.Use(cfg.RestaurantExists)
		byID.GET("", cfg.RestaurantHandler.GetRestaurant)
		byID.GET("/weather", cfg.WeatherHandler.GetWeather)
		byID.POST("/reviews", cfg.RestaurantHandler.CreateReview)
		byID.GET("/reviews", cfg.RestaurantHandler.GetReviews)
		byID.DELETE("/reviews/:reviewId", cfg.RestaurantHandler.DeleteReview)

		cuisines := api.Group("/cuisines")
		cuisines.GET("", cfg.CuisineHandler.ListCuisines)
		cuisines.GET("/:cuisine", cfg.CuisineHandler.ListRestaurantsByCuisine)
	}

	return router
}

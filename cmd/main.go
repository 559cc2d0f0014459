package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/yungbote/bites-backend/internal/clients/weather"
	"github.com/yungbote/bites-backend/internal/db"
	"github.com/yungbote/bites-backend/internal/handlers"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/middleware"
	"github.com/yungbote/bites-backend/internal/repos"
	"github.com/yungbote/bites-backend/internal/server"
	"github.com/yungbote/bites-backend/internal/services"
	"github.com/yungbote/bites-backend/internal/utils"
)

func main() {
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Redis
	redisService, err := db.NewRedisService(log)
	if err != nil {
		log.Error("Redis init failed", "error", err)
		os.Exit(1)
	}
	defer redisService.Close()
	rdb := redisService.Client()

	// Repos
	log.Info("Setting up repos...")
	restaurantRepo := repos.NewRestaurantRepo(rdb, log)
	reviewRepo := repos.NewReviewRepo(rdb, log)
	cuisineRepo := repos.NewCuisineRepo(rdb, log)
	ratingRepo := repos.NewRatingRepo(rdb, log)
	weatherRepo := repos.NewWeatherRepo(rdb, log)

	// Services
	log.Info("Setting up services...")
	weatherTTL := utils.GetEnvAsInt("WEATHER_CACHE_TTL_SECONDS", 3600, log)
	weatherClient := weather.NewOpenWeatherClient(log)
	restaurantService := services.NewRestaurantService(log, restaurantRepo, reviewRepo, cuisineRepo, ratingRepo)
	cuisineService := services.NewCuisineService(log, cuisineRepo, restaurantRepo)
	ratingService := services.NewRatingService(log, ratingRepo, restaurantRepo)
	weatherService := services.NewWeatherService(log, weatherRepo, restaurantRepo, weatherClient, time.Duration(weatherTTL)*time.Second)

	// Handlers
	log.Info("Setting up handlers...")
	restaurantHandler := handlers.NewRestaurantHandler(log, restaurantService, ratingService)
	cuisineHandler := handlers.NewCuisineHandler(log, cuisineService)
	weatherHandler := handlers.NewWeatherHandler(log, weatherService)

	router := server.NewRouter(server.RouterConfig{
		RestaurantHandler: restaurantHandler,
		CuisineHandler:    cuisineHandler,
		WeatherHandler:    weatherHandler,
		RestaurantExists:  middleware.CheckRestaurantExists(log, restaurantRepo),
	})

	port := utils.GetEnv("PORT", "8000", log)
	log.Info("Starting server...", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

package services

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type testStack struct {
	mr             *miniredis.Miniredis
	restaurantSvc  RestaurantService
	cuisineSvc     CuisineService
	ratingSvc      RatingService
	restaurantRepo repos.RestaurantRepo
	reviewRepo     repos.ReviewRepo
	weatherRepo    repos.WeatherRepo
}

func newTestStack(t *testing.T) *testStack {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	log := testLogger()
	restaurantRepo := repos.NewRestaurantRepo(client, log)
	reviewRepo := repos.NewReviewRepo(client, log)
	cuisineRepo := repos.NewCuisineRepo(client, log)
	ratingRepo := repos.NewRatingRepo(client, log)
	weatherRepo := repos.NewWeatherRepo(client, log)

	return &testStack{
		mr:             mr,
		restaurantSvc:  NewRestaurantService(log, restaurantRepo, reviewRepo, cuisineRepo, ratingRepo),
		cuisineSvc:     NewCuisineService(log, cuisineRepo, restaurantRepo),
		ratingSvc:      NewRatingService(log, ratingRepo, restaurantRepo),
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		weatherRepo:    weatherRepo,
	}
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/clients/weather"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
)

type WeatherService interface {
	GetWeather(ctx context.Context, restaurantID string) (json.RawMessage, error)
}

type weatherService struct {
	log            *logger.Logger
	weatherRepo    repos.WeatherRepo
	restaurantRepo repos.RestaurantRepo
	client         weather.Client
	ttl            time.Duration
}

func NewWeatherService(
	log *logger.Logger,
	weatherRepo repos.WeatherRepo,
	restaurantRepo repos.RestaurantRepo,
	client weather.Client,
	ttl time.Duration,
) WeatherService {
	return &weatherService{
		log:            log.With("service", "WeatherService"),
		weatherRepo:    weatherRepo,
		restaurantRepo: restaurantRepo,
		client:         client,
		ttl:            ttl,
	}
}

// GetWeather is a read-through cache over the upstream weather source. A
// cached, unexpired payload is served with no upstream call; on a miss the
// restaurant's coordinates are resolved, the upstream is queried, and the
// fresh payload is cached with the configured TTL. The cache only saves
// latency and upstream volume; a failed cache write is logged and the
// payload is still returned.
func (ws *weatherService) GetWeather(ctx context.Context, restaurantID string) (json.RawMessage, error) {
	cached, hit, err := ws.weatherRepo.GetCached(ctx, restaurantID)
	if err != nil {
		ws.log.Error("Failed to read weather cache", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("read weather cache: %w", err))
	}
	if hit {
		return cached, nil
	}

	location, err := ws.restaurantRepo.GetLocation(ctx, restaurantID)
	if err != nil {
		ws.log.Error("Failed to resolve restaurant location", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("resolve location: %w", err))
	}
	lat, lon, ok := splitCoords(location)
	if !ok {
		return nil, apierr.NotFound(errors.New("restaurant has no coordinates"))
	}

	payload, err := ws.client.CurrentByCoords(ctx, lat, lon)
	if err != nil {
		var upstreamErr *weather.UpstreamError
		if errors.As(err, &upstreamErr) {
			ws.log.Warn("Weather upstream reported failure", "restaurant_id", restaurantID, "code", upstreamErr.Code, "message", upstreamErr.Message)
			return nil, apierr.Upstream(err)
		}
		ws.log.Error("Weather upstream call failed", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Upstream(fmt.Errorf("weather upstream: %w", err))
	}

	if err := ws.weatherRepo.SetCached(ctx, restaurantID, payload, ws.ttl); err != nil {
		ws.log.Warn("Failed to cache weather payload", "restaurant_id", restaurantID, "error", err)
	}
	return payload, nil
}

// splitCoords parses the restaurant location field, which doubles as a
// "lng,lat" pair for weather lookups.
func splitCoords(location string) (lat, lon string, ok bool) {
	parts := strings.Split(location, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	lon = strings.TrimSpace(parts[0])
	lat = strings.TrimSpace(parts[1])
	if lat == "" || lon == "" {
		return "", "", false
	}
	return lat, lon, true
}

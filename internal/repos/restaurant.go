package repos

import (
	"context"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bites-backend/internal/keys"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/types"
)

type RestaurantRepo interface {
	Create(ctx context.Context, restaurant *types.Restaurant) error
	Get(ctx context.Context, restaurantID string) (*types.Restaurant, bool, error)
	Exists(ctx context.Context, restaurantID string) (bool, error)
	IncrViewCount(ctx context.Context, restaurantID string) (int64, error)
	IncrTotalStars(ctx context.Context, restaurantID string, delta int64) (int64, error)
	SetAvgStars(ctx context.Context, restaurantID string, avg float64) error
	GetLocation(ctx context.Context, restaurantID string) (string, error)
	Summary(ctx context.Context, restaurantID string) (*types.RestaurantSummary, bool, error)
}

type restaurantRepo struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewRestaurantRepo(rdb *goredis.Client, baseLog *logger.Logger) RestaurantRepo {
	return &restaurantRepo{rdb: rdb, log: baseLog.With("repo", "RestaurantRepo")}
}

func (rr *restaurantRepo) Create(ctx context.Context, restaurant *types.Restaurant) error {
	return rr.rdb.HSet(ctx, keys.Restaurant(restaurant.ID),
		"id", restaurant.ID,
		"name", restaurant.Name,
		"location", restaurant.Location,
		"viewCount", restaurant.ViewCount,
		"totalStars", restaurant.TotalStars,
		"avgStars", restaurant.AvgStars,
	).Err()
}

func (rr *restaurantRepo) Get(ctx context.Context, restaurantID string) (*types.Restaurant, bool, error) {
	cmd := rr.rdb.HGetAll(ctx, keys.Restaurant(restaurantID))
	if err := cmd.Err(); err != nil {
		return nil, false, err
	}
	if len(cmd.Val()) == 0 {
		return nil, false, nil
	}
	var restaurant types.Restaurant
	if err := cmd.Scan(&restaurant); err != nil {
		return nil, false, err
	}
	return &restaurant, true, nil
}

func (rr *restaurantRepo) Exists(ctx context.Context, restaurantID string) (bool, error) {
	n, err := rr.rdb.Exists(ctx, keys.Restaurant(restaurantID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (rr *restaurantRepo) IncrViewCount(ctx context.Context, restaurantID string) (int64, error) {
	return rr.rdb.HIncrBy(ctx, keys.Restaurant(restaurantID), "viewCount", 1).Result()
}

func (rr *restaurantRepo) IncrTotalStars(ctx context.Context, restaurantID string, delta int64) (int64, error) {
	return rr.rdb.HIncrBy(ctx, keys.Restaurant(restaurantID), "totalStars", delta).Result()
}

func (rr *restaurantRepo) SetAvgStars(ctx context.Context, restaurantID string, avg float64) error {
	return rr.rdb.HSet(ctx, keys.Restaurant(restaurantID), "avgStars", avg).Err()
}

func (rr *restaurantRepo) GetLocation(ctx context.Context, restaurantID string) (string, error) {
	loc, err := rr.rdb.HGet(ctx, keys.Restaurant(restaurantID), "location").Result()
	if err == goredis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return loc, nil
}

// Summary resolves just the name and average rating. The bool result is
// false when the restaurant hash no longer exists, so callers can filter
// dangling index entries.
func (rr *restaurantRepo) Summary(ctx context.Context, restaurantID string) (*types.RestaurantSummary, bool, error) {
	vals, err := rr.rdb.HMGet(ctx, keys.Restaurant(restaurantID), "name", "avgStars").Result()
	if err != nil {
		return nil, false, err
	}
	name, ok := vals[0].(string)
	if !ok || name == "" {
		return nil, false, nil
	}
	summary := &types.RestaurantSummary{ID: restaurantID, Name: name}
	if raw, ok := vals[1].(string); ok {
		summary.AvgStars = parseFloatOrZero(raw)
	}
	return summary, true, nil
}

func parseFloatOrZero(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return f
}

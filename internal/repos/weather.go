package repos

import (
	"context"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bites-backend/internal/keys"
	"github.com/yungbote/bites-backend/internal/logger"
)

// WeatherRepo caches upstream weather payloads per restaurant as plain
// strings with a TTL. An entry simply stops existing after expiry.
type WeatherRepo interface {
	GetCached(ctx context.Context, restaurantID string) ([]byte, bool, error)
	SetCached(ctx context.Context, restaurantID string, payload []byte, ttl time.Duration) error
}

type weatherRepo struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewWeatherRepo(rdb *goredis.Client, baseLog *logger.Logger) WeatherRepo {
	return &weatherRepo{rdb: rdb, log: baseLog.With("repo", "WeatherRepo")}
}

func (wr *weatherRepo) GetCached(ctx context.Context, restaurantID string) ([]byte, bool, error) {
	raw, err := wr.rdb.Get(ctx, keys.Weather(restaurantID)).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return raw, true, nil
}

func (wr *weatherRepo) SetCached(ctx context.Context, restaurantID string, payload []byte, ttl time.Duration) error {
	return wr.rdb.Set(ctx, keys.Weather(restaurantID), payload, ttl).Err()
}

package repos

import (
	"context"

	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/bites-backend/internal/keys"
	"github.com/yungbote/bites-backend/internal/logger"
)

// CuisineRepo maintains the bidirectional cuisine index: the global set of
// cuisine names, one restaurant-id set per cuisine, and one cuisine set per
// restaurant. The global name set is append-only and never pruned.
type CuisineRepo interface {
	TagRestaurant(ctx context.Context, cuisine, restaurantID string) error
	All(ctx context.Context) ([]string, error)
	RestaurantIDs(ctx context.Context, cuisine string) ([]string, error)
	ForRestaurant(ctx context.Context, restaurantID string) ([]string, error)
}

type cuisineRepo struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewCuisineRepo(rdb *goredis.Client, baseLog *logger.Logger) CuisineRepo {
	return &cuisineRepo{rdb: rdb, log: baseLog.With("repo", "CuisineRepo")}
}

// TagRestaurant issues the three index writes together as one best-effort
// batch. None of them is individually retried and there is no rollback: a
// partial failure leaves the index eventually consistent, which callers
// accept.
func (cr *cuisineRepo) TagRestaurant(ctx context.Context, cuisine, restaurantID string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return cr.rdb.SAdd(gctx, keys.Cuisines(), cuisine).Err()
	})
	g.Go(func() error {
		return cr.rdb.SAdd(gctx, keys.Cuisine(cuisine), restaurantID).Err()
	})
	g.Go(func() error {
		return cr.rdb.SAdd(gctx, keys.RestaurantCuisines(restaurantID), cuisine).Err()
	})
	return g.Wait()
}

func (cr *cuisineRepo) All(ctx context.Context) ([]string, error) {
	return cr.rdb.SMembers(ctx, keys.Cuisines()).Result()
}

func (cr *cuisineRepo) RestaurantIDs(ctx context.Context, cuisine string) ([]string, error) {
	return cr.rdb.SMembers(ctx, keys.Cuisine(cuisine)).Result()
}

func (cr *cuisineRepo) ForRestaurant(ctx context.Context, restaurantID string) ([]string, error) {
	return cr.rdb.SMembers(ctx, keys.RestaurantCuisines(restaurantID)).Result()
}

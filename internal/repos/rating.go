package repos

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bites-backend/internal/keys"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/types"
)

// RatingRepo is the global ranked index of restaurants by average rating,
// backed by a single sorted set keyed on restaurant id.
type RatingRepo interface {
	SetScore(ctx context.Context, restaurantID string, score float64) error
	Top(ctx context.Context, start, stop int64) ([]types.RatingEntry, error)
}

type ratingRepo struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewRatingRepo(rdb *goredis.Client, baseLog *logger.Logger) RatingRepo {
	return &ratingRepo{rdb: rdb, log: baseLog.With("repo", "RatingRepo")}
}

func (gr *ratingRepo) SetScore(ctx context.Context, restaurantID string, score float64) error {
	return gr.rdb.ZAdd(ctx, keys.RestaurantsByRating(), goredis.Z{
		Score:  score,
		Member: restaurantID,
	}).Err()
}

// Top returns entries ordered by descending score. Redis keeps equal-score
// members in lexicographic order, so a reverse range breaks ties by
// descending restaurant id, which is deterministic across reads.
func (gr *ratingRepo) Top(ctx context.Context, start, stop int64) ([]types.RatingEntry, error) {
	zs, err := gr.rdb.ZRevRangeWithScores(ctx, keys.RestaurantsByRating(), start, stop).Result()
	if err != nil {
		return nil, err
	}
	entries := make([]types.RatingEntry, 0, len(zs))
	for _, z := range zs {
		id, ok := z.Member.(string)
		if !ok {
			continue
		}
		entries = append(entries, types.RatingEntry{RestaurantID: id, Score: z.Score})
	}
	return entries, nil
}

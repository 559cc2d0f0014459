package repos

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/bites-backend/internal/keys"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/types"
)

// ReviewRepo covers both halves of a review: the per-restaurant ledger of
// review ids (a Redis list, newest first) and the per-review detail hash.
// The two are separate keys written without a cross-key transaction, so a
// ledger entry can transiently outlive its detail hash and vice versa.
type ReviewRepo interface {
	PutDetails(ctx context.Context, review *types.Review) error
	GetDetails(ctx context.Context, reviewID string) (*types.Review, bool, error)
	Push(ctx context.Context, restaurantID, reviewID string) (int64, error)
	Page(ctx context.Context, restaurantID string, start, stop int64) ([]string, error)
	Remove(ctx context.Context, restaurantID, reviewID string) (int64, error)
	DeleteDetails(ctx context.Context, reviewID string) (int64, error)
}

type reviewRepo struct {
	rdb *goredis.Client
	log *logger.Logger
}

func NewReviewRepo(rdb *goredis.Client, baseLog *logger.Logger) ReviewRepo {
	return &reviewRepo{rdb: rdb, log: baseLog.With("repo", "ReviewRepo")}
}

func (vr *reviewRepo) PutDetails(ctx context.Context, review *types.Review) error {
	return vr.rdb.HSet(ctx, keys.ReviewDetails(review.ID),
		"id", review.ID,
		"restaurantId", review.RestaurantID,
		"review", review.Review,
		"rating", review.Rating,
		"timestamp", review.Timestamp,
	).Err()
}

func (vr *reviewRepo) GetDetails(ctx context.Context, reviewID string) (*types.Review, bool, error) {
	cmd := vr.rdb.HGetAll(ctx, keys.ReviewDetails(reviewID))
	if err := cmd.Err(); err != nil {
		return nil, false, err
	}
	if len(cmd.Val()) == 0 {
		return nil, false, nil
	}
	var review types.Review
	if err := cmd.Scan(&review); err != nil {
		return nil, false, err
	}
	return &review, true, nil
}

// Push prepends the review id and returns the ledger length after the push.
func (vr *reviewRepo) Push(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	return vr.rdb.LPush(ctx, keys.ReviewList(restaurantID), reviewID).Result()
}

func (vr *reviewRepo) Page(ctx context.Context, restaurantID string, start, stop int64) ([]string, error) {
	return vr.rdb.LRange(ctx, keys.ReviewList(restaurantID), start, stop).Result()
}

// Remove deletes every occurrence of the id from the ledger and returns how
// many were removed.
func (vr *reviewRepo) Remove(ctx context.Context, restaurantID, reviewID string) (int64, error) {
	return vr.rdb.LRem(ctx, keys.ReviewList(restaurantID), 0, reviewID).Result()
}

func (vr *reviewRepo) DeleteDetails(ctx context.Context, reviewID string) (int64, error) {
	return vr.rdb.Unlink(ctx, keys.ReviewDetails(reviewID)).Result()
}

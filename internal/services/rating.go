package services

import (
	"context"
	"fmt"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
	"github.com/yungbote/bites-backend/internal/types"
)

type RatingService interface {
	TopRestaurantsByRating(ctx context.Context, page, pageSize int) ([]*types.RestaurantSummary, error)
}

type ratingService struct {
	log            *logger.Logger
	ratingRepo     repos.RatingRepo
	restaurantRepo repos.RestaurantRepo
}

func NewRatingService(log *logger.Logger, ratingRepo repos.RatingRepo, restaurantRepo repos.RestaurantRepo) RatingService {
	return &ratingService{
		log:            log.With("service", "RatingService"),
		ratingRepo:     ratingRepo,
		restaurantRepo: restaurantRepo,
	}
}

// TopRestaurantsByRating pages through the ranked index in descending score
// order. The score reported is the one recorded in the index at read time;
// entries whose restaurant hash has vanished are dropped.
func (ts *ratingService) TopRestaurantsByRating(ctx context.Context, page, pageSize int) ([]*types.RestaurantSummary, error) {
	start := int64(page-1) * int64(pageSize)
	stop := start + int64(pageSize) - 1

	entries, err := ts.ratingRepo.Top(ctx, start, stop)
	if err != nil {
		ts.log.Error("Failed to fetch rating index page", "error", err)
		return nil, apierr.Store(fmt.Errorf("fetch rating index: %w", err))
	}

	ids := make([]string, len(entries))
	scores := make(map[string]float64, len(entries))
	for i, entry := range entries {
		ids[i] = entry.RestaurantID
		scores[entry.RestaurantID] = entry.Score
	}

	summaries, err := resolveSummaries(ctx, ts.restaurantRepo, ids)
	if err != nil {
		ts.log.Error("Failed to resolve top restaurants", "error", err)
		return nil, apierr.Store(fmt.Errorf("resolve top restaurants: %w", err))
	}
	for _, summary := range summaries {
		summary.AvgStars = scores[summary.ID]
	}
	return summaries, nil
}

package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
	"github.com/yungbote/bites-backend/internal/types"
)

type CreateRestaurantInput struct {
	Name     string
	Location string
	Cuisines []string
}

type CreateReviewInput struct {
	Review string
	Rating int64
}

type RestaurantService interface {
	CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (*types.Restaurant, error)
	GetRestaurant(ctx context.Context, restaurantID string) (*types.Restaurant, error)
	CreateReview(ctx context.Context, restaurantID string, input CreateReviewInput) (*types.Review, error)
	GetReviews(ctx context.Context, restaurantID string, page, pageSize int) ([]*types.Review, error)
	DeleteReview(ctx context.Context, restaurantID, reviewID string) error
}

type restaurantService struct {
	log            *logger.Logger
	restaurantRepo repos.RestaurantRepo
	reviewRepo     repos.ReviewRepo
	cuisineRepo    repos.CuisineRepo
	ratingRepo     repos.RatingRepo
}

func NewRestaurantService(
	log *logger.Logger,
	restaurantRepo repos.RestaurantRepo,
	reviewRepo repos.ReviewRepo,
	cuisineRepo repos.CuisineRepo,
	ratingRepo repos.RatingRepo,
) RestaurantService {
	return &restaurantService{
		log:            log.With("service", "RestaurantService"),
		restaurantRepo: restaurantRepo,
		reviewRepo:     reviewRepo,
		cuisineRepo:    cuisineRepo,
		ratingRepo:     ratingRepo,
	}
}

// CreateRestaurant writes the restaurant hash, tags every cuisine, and seeds
// the rating index at 0. The writes go out as one best-effort batch without
// rollback; a partial failure leaves the indexes eventually consistent.
func (rs *restaurantService) CreateRestaurant(ctx context.Context, input CreateRestaurantInput) (*types.Restaurant, error) {
	restaurant := &types.Restaurant{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(input.Name),
		Location: strings.TrimSpace(input.Location),
	}
	for _, cuisine := range input.Cuisines {
		cuisine = strings.TrimSpace(cuisine)
		if cuisine == "" {
			continue
		}
		restaurant.Cuisines = append(restaurant.Cuisines, cuisine)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rs.restaurantRepo.Create(gctx, restaurant)
	})
	for _, cuisine := range restaurant.Cuisines {
		cuisine := cuisine
		g.Go(func() error {
			return rs.cuisineRepo.TagRestaurant(gctx, cuisine, restaurant.ID)
		})
	}
	g.Go(func() error {
		return rs.ratingRepo.SetScore(gctx, restaurant.ID, 0)
	})
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to create restaurant", "restaurant_id", restaurant.ID, "error", err)
		return nil, apierr.Store(fmt.Errorf("create restaurant: %w", err))
	}

	return restaurant, nil
}

// GetRestaurant bumps the view counter as part of every successful read, so
// reads are deliberately not side-effect free.
func (rs *restaurantService) GetRestaurant(ctx context.Context, restaurantID string) (*types.Restaurant, error) {
	restaurant, found, err := rs.restaurantRepo.Get(ctx, restaurantID)
	if err != nil {
		rs.log.Error("Failed to fetch restaurant", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("fetch restaurant: %w", err))
	}
	if !found {
		return nil, apierr.NotFound(errors.New("restaurant not found"))
	}

	var views int64
	var cuisines []string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = rs.restaurantRepo.IncrViewCount(gctx, restaurantID)
		return err
	})
	g.Go(func() error {
		var err error
		cuisines, err = rs.cuisineRepo.ForRestaurant(gctx, restaurantID)
		return err
	})
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to fetch restaurant", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("fetch restaurant: %w", err))
	}

	sort.Strings(cuisines)
	restaurant.ViewCount = views
	restaurant.Cuisines = cuisines
	return restaurant, nil
}

// CreateReview stores the detail hash and prepends the id to the ledger
// together, then folds the new rating into the running average. The ledger
// length returned by the prepend and the accumulator total returned by the
// increment are the read-backs the average is computed from; two concurrent
// submissions may interleave between them, and the running average is
// eventually rather than strictly correct under that race.
func (rs *restaurantService) CreateReview(ctx context.Context, restaurantID string, input CreateReviewInput) (*types.Review, error) {
	review := &types.Review{
		ID:           uuid.NewString(),
		RestaurantID: restaurantID,
		Review:       input.Review,
		Rating:       input.Rating,
		Timestamp:    time.Now().UnixMilli(),
	}

	var count int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		count, err = rs.reviewRepo.Push(gctx, restaurantID, review.ID)
		return err
	})
	g.Go(func() error {
		return rs.reviewRepo.PutDetails(gctx, review)
	})
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to create review", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("create review: %w", err))
	}

	total, err := rs.restaurantRepo.IncrTotalStars(ctx, restaurantID, review.Rating)
	if err != nil {
		rs.log.Error("Failed to update star total", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("update star total: %w", err))
	}

	avg := roundToTenth(float64(total) / float64(count))
	g, gctx = errgroup.WithContext(ctx)
	g.Go(func() error {
		return rs.restaurantRepo.SetAvgStars(gctx, restaurantID, avg)
	})
	g.Go(func() error {
		return rs.ratingRepo.SetScore(gctx, restaurantID, avg)
	})
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to update rating index", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("update rating index: %w", err))
	}

	return review, nil
}

// GetReviews resolves one ledger page to detail records, newest first. Ids
// whose detail hash is gone are dropped silently; a crash between the two
// review writes can leave such orphans behind.
func (rs *restaurantService) GetReviews(ctx context.Context, restaurantID string, page, pageSize int) ([]*types.Review, error) {
	start := int64(page-1) * int64(pageSize)
	stop := start + int64(pageSize) - 1

	ids, err := rs.reviewRepo.Page(ctx, restaurantID, start, stop)
	if err != nil {
		rs.log.Error("Failed to fetch review page", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("fetch review page: %w", err))
	}

	resolved := make([]*types.Review, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			review, found, err := rs.reviewRepo.GetDetails(gctx, id)
			if err != nil {
				return err
			}
			if found {
				resolved[i] = review
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to resolve reviews", "restaurant_id", restaurantID, "error", err)
		return nil, apierr.Store(fmt.Errorf("resolve reviews: %w", err))
	}

	reviews := make([]*types.Review, 0, len(resolved))
	for _, review := range resolved {
		if review != nil {
			reviews = append(reviews, review)
		}
	}
	return reviews, nil
}

// DeleteReview removes the ledger entry and the detail hash together and
// succeeds if either removal had effect, tolerating partial state left by
// earlier incomplete writes. Only when both were no-ops does it report
// NotFound.
func (rs *restaurantService) DeleteReview(ctx context.Context, restaurantID, reviewID string) error {
	var removed, deleted int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		removed, err = rs.reviewRepo.Remove(gctx, restaurantID, reviewID)
		return err
	})
	g.Go(func() error {
		var err error
		deleted, err = rs.reviewRepo.DeleteDetails(gctx, reviewID)
		return err
	})
	if err := g.Wait(); err != nil {
		rs.log.Error("Failed to delete review", "restaurant_id", restaurantID, "review_id", reviewID, "error", err)
		return apierr.Store(fmt.Errorf("delete review: %w", err))
	}

	if removed == 0 && deleted == 0 {
		return apierr.NotFound(errors.New("review not found"))
	}
	return nil
}

func roundToTenth(v float64) float64 {
	return math.Round(v*10) / 10
}

// resolveSummaries fans out summary lookups for a list of restaurant ids,
// keeping input order and dropping ids whose hash has vanished.
func resolveSummaries(ctx context.Context, restaurantRepo repos.RestaurantRepo, ids []string) ([]*types.RestaurantSummary, error) {
	resolved := make([]*types.RestaurantSummary, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			summary, found, err := restaurantRepo.Summary(gctx, id)
			if err != nil {
				return err
			}
			if found {
				resolved[i] = summary
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	summaries := make([]*types.RestaurantSummary, 0, len(resolved))
	for _, summary := range resolved {
		if summary != nil {
			summaries = append(summaries, summary)
		}
	}
	return summaries, nil
}

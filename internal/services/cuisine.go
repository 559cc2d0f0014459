package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
	"github.com/yungbote/bites-backend/internal/types"
)

type CuisineService interface {
	ListCuisines(ctx context.Context) ([]string, error)
	ListRestaurantsByCuisine(ctx context.Context, cuisine string) ([]*types.RestaurantSummary, error)
}

type cuisineService struct {
	log            *logger.Logger
	cuisineRepo    repos.CuisineRepo
	restaurantRepo repos.RestaurantRepo
}

func NewCuisineService(log *logger.Logger, cuisineRepo repos.CuisineRepo, restaurantRepo repos.RestaurantRepo) CuisineService {
	return &cuisineService{
		log:            log.With("service", "CuisineService"),
		cuisineRepo:    cuisineRepo,
		restaurantRepo: restaurantRepo,
	}
}

// ListCuisines returns every cuisine name ever used. The set is append-only,
// so a name can outlive the last restaurant that carried it.
func (cs *cuisineService) ListCuisines(ctx context.Context) ([]string, error) {
	cuisines, err := cs.cuisineRepo.All(ctx)
	if err != nil {
		cs.log.Error("Failed to list cuisines", "error", err)
		return nil, apierr.Store(fmt.Errorf("list cuisines: %w", err))
	}
	sort.Strings(cuisines)
	return cuisines, nil
}

// ListRestaurantsByCuisine resolves the cuisine's id set against the
// restaurant hashes. An unknown cuisine yields an empty list, and ids whose
// restaurant record has vanished are filtered out.
func (cs *cuisineService) ListRestaurantsByCuisine(ctx context.Context, cuisine string) ([]*types.RestaurantSummary, error) {
	ids, err := cs.cuisineRepo.RestaurantIDs(ctx, cuisine)
	if err != nil {
		cs.log.Error("Failed to list restaurants by cuisine", "cuisine", cuisine, "error", err)
		return nil, apierr.Store(fmt.Errorf("list restaurants by cuisine: %w", err))
	}
	sort.Strings(ids)

	summaries, err := resolveSummaries(ctx, cs.restaurantRepo, ids)
	if err != nil {
		cs.log.Error("Failed to resolve restaurants by cuisine", "cuisine", cuisine, "error", err)
		return nil, apierr.Store(fmt.Errorf("resolve restaurants by cuisine: %w", err))
	}
	return summaries, nil
}

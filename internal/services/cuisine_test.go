package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yungbote/bites-backend/internal/keys"
)

func TestListCuisinesEmpty(t *testing.T) {
	stack := newTestStack(t)

	cuisines, err := stack.cuisineSvc.ListCuisines(context.Background())
	require.NoError(t, err)
	require.Empty(t, cuisines)
}

func TestListCuisinesCollectsAllNames(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	_, err := stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "The Italian Place",
		Location: "-0.1257,51.5085",
		Cuisines: []string{"italian", "pizza"},
	})
	require.NoError(t, err)
	_, err = stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "Sushi Go",
		Location: "139.69,35.69",
		Cuisines: []string{"japanese", "pizza"},
	})
	require.NoError(t, err)

	cuisines, err := stack.cuisineSvc.ListCuisines(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"italian", "japanese", "pizza"}, cuisines)
}

func TestListRestaurantsByCuisineEmpty(t *testing.T) {
	stack := newTestStack(t)

	restaurants, err := stack.cuisineSvc.ListRestaurantsByCuisine(context.Background(), "thai")
	require.NoError(t, err)
	require.Empty(t, restaurants)
}

func TestListRestaurantsByCuisine(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	italian, err := stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "The Italian Place",
		Location: "-0.1257,51.5085",
		Cuisines: []string{"italian", "pizza"},
	})
	require.NoError(t, err)
	pizzeria, err := stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "Slice Shop",
		Location: "-74.0,40.7",
		Cuisines: []string{"pizza"},
	})
	require.NoError(t, err)

	byPizza, err := stack.cuisineSvc.ListRestaurantsByCuisine(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, byPizza, 2)
	require.ElementsMatch(t, []string{italian.ID, pizzeria.ID}, []string{byPizza[0].ID, byPizza[1].ID})

	byItalian, err := stack.cuisineSvc.ListRestaurantsByCuisine(ctx, "italian")
	require.NoError(t, err)
	require.Len(t, byItalian, 1)
	require.Equal(t, italian.ID, byItalian[0].ID)
}

func TestListRestaurantsByCuisineFiltersVanished(t *testing.T) {
	stack := newTestStack(t)
	ctx := context.Background()

	kept, err := stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "Still Here",
		Location: "0,0",
		Cuisines: []string{"pizza"},
	})
	require.NoError(t, err)
	gone, err := stack.restaurantSvc.CreateRestaurant(ctx, CreateRestaurantInput{
		Name:     "Gone",
		Location: "1,1",
		Cuisines: []string{"pizza"},
	})
	require.NoError(t, err)

	// The cuisine set keeps the id, but the record itself is gone.
	stack.mr.Del(keys.Restaurant(gone.ID))

	restaurants, err := stack.cuisineSvc.ListRestaurantsByCuisine(ctx, "pizza")
	require.NoError(t, err)
	require.Len(t, restaurants, 1)
	require.Equal(t, kept.ID, restaurants[0].ID)
}

package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/services"
	"github.com/yungbote/bites-backend/internal/types"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

type stubRestaurantService struct {
	calls        int
	createErr    error
	deleteErr    error
	reviews      []*types.Review
	lastPage     int
	lastPageSize int
}

func (s *stubRestaurantService) CreateRestaurant(ctx context.Context, input services.CreateRestaurantInput) (*types.Restaurant, error) {
	s.calls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &types.Restaurant{ID: "r1", Name: input.Name, Location: input.Location, Cuisines: input.Cuisines}, nil
}

func (s *stubRestaurantService) GetRestaurant(ctx context.Context, restaurantID string) (*types.Restaurant, error) {
	s.calls++
	return &types.Restaurant{ID: restaurantID}, nil
}

func (s *stubRestaurantService) CreateReview(ctx context.Context, restaurantID string, input services.CreateReviewInput) (*types.Review, error) {
	s.calls++
	return &types.Review{ID: "v1", RestaurantID: restaurantID, Review: input.Review, Rating: input.Rating}, nil
}

func (s *stubRestaurantService) GetReviews(ctx context.Context, restaurantID string, page, pageSize int) ([]*types.Review, error) {
	s.calls++
	s.lastPage = page
	s.lastPageSize = pageSize
	return s.reviews, nil
}

func (s *stubRestaurantService) DeleteReview(ctx context.Context, restaurantID, reviewID string) error {
	s.calls++
	return s.deleteErr
}

type stubRatingService struct{}

func (s *stubRatingService) TopRestaurantsByRating(ctx context.Context, page, pageSize int) ([]*types.RestaurantSummary, error) {
	return nil, nil
}

func newTestRouter(stub *stubRestaurantService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRestaurantHandler(testLogger(), stub, &stubRatingService{})
	router := gin.New()
	router.POST("/restaurants", h.CreateRestaurant)
	router.GET("/restaurants/:restaurantId/reviews", h.GetReviews)
	router.POST("/restaurants/:restaurantId/reviews", h.CreateReview)
	router.DELETE("/restaurants/:restaurantId/reviews/:reviewId", h.DeleteReview)
	return router
}

func TestCreateRestaurantRejectsMissingFields(t *testing.T) {
	stub := &stubRestaurantService{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/restaurants", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, stub.calls)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, apierr.CodeValidation, envelope.Error.Code)
}

func TestCreateReviewRejectsOutOfRangeRating(t *testing.T) {
	stub := &stubRestaurantService{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/restaurants/r1/reviews", strings.NewReader(`{"review":"ok","rating":11}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Zero(t, stub.calls)
}

func TestGetReviewsRejectsBadPagination(t *testing.T) {
	stub := &stubRestaurantService{}
	router := newTestRouter(stub)

	for _, query := range []string{"page=0", "page=abc", "limit=0", "limit=1000"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/restaurants/r1/reviews?"+query, nil)
		router.ServeHTTP(w, req)

		require.Equalf(t, http.StatusBadRequest, w.Code, "query %q", query)
	}
	require.Zero(t, stub.calls)
}

func TestGetReviewsDefaultsPagination(t *testing.T) {
	stub := &stubRestaurantService{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/restaurants/r1/reviews", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, 1, stub.lastPage)
	require.Equal(t, 10, stub.lastPageSize)
}

func TestDeleteReviewMapsNotFound(t *testing.T) {
	stub := &stubRestaurantService{deleteErr: apierr.NotFound(errors.New("review not found"))}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/restaurants/r1/reviews/v1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var envelope ErrorEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	require.Equal(t, apierr.CodeNotFound, envelope.Error.Code)
}

func TestCreateRestaurantReturnsCreated(t *testing.T) {
	stub := &stubRestaurantService{}
	router := newTestRouter(stub)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/restaurants", strings.NewReader(`{"name":"The Italian Place","location":"-0.1257,51.5085","cuisines":["italian","pizza"]}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var restaurant types.Restaurant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &restaurant))
	require.Equal(t, "r1", restaurant.ID)
	require.Equal(t, []string{"italian", "pizza"}, restaurant.Cuisines)
}

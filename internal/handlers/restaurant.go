package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/services"
)

type RestaurantHandler struct {
	log           *logger.Logger
	restaurantSvc services.RestaurantService
	ratingSvc     services.RatingService
}

func NewRestaurantHandler(log *logger.Logger, restaurantSvc services.RestaurantService, ratingSvc services.RatingService) *RestaurantHandler {
	return &RestaurantHandler{
		log:           log.With("handler", "RestaurantHandler"),
		restaurantSvc: restaurantSvc,
		ratingSvc:     ratingSvc,
	}
}

type createRestaurantRequest struct {
	Name     string   `json:"name" binding:"required"`
	Location string   `json:"location" binding:"required"`
	Cuisines []string `json:"cuisines" binding:"required,min=1,dive,required"`
}

type createReviewRequest struct {
	Review string `json:"review" binding:"required"`
	Rating int64  `json:"rating" binding:"required,min=1,max=10"`
}

// POST /api/v1/restaurants
func (h *RestaurantHandler) CreateRestaurant(c *gin.Context) {
	var req createRestaurantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	restaurant, err := h.restaurantSvc.CreateRestaurant(c.Request.Context(), services.CreateRestaurantInput{
		Name:     req.Name,
		Location: req.Location,
		Cuisines: req.Cuisines,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, restaurant)
}

// GET /api/v1/restaurants/:restaurantId
func (h *RestaurantHandler) GetRestaurant(c *gin.Context) {
	restaurant, err := h.restaurantSvc.GetRestaurant(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, restaurant)
}

// GET /api/v1/restaurants/top
func (h *RestaurantHandler) TopRestaurants(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	summaries, err := h.ratingSvc.TopRestaurantsByRating(c.Request.Context(), page, limit)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, summaries)
}

// POST /api/v1/restaurants/:restaurantId/reviews
func (h *RestaurantHandler) CreateReview(c *gin.Context) {
	var req createReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	review, err := h.restaurantSvc.CreateReview(c.Request.Context(), c.Param("restaurantId"), services.CreateReviewInput{
		Review: req.Review,
		Rating: req.Rating,
	})
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondCreated(c, review)
}

// GET /api/v1/restaurants/:restaurantId/reviews
func (h *RestaurantHandler) GetReviews(c *gin.Context) {
	page, limit, err := parsePagination(c)
	if err != nil {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, err)
		return
	}

	reviews, err := h.restaurantSvc.GetReviews(c.Request.Context(), c.Param("restaurantId"), page, limit)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, reviews)
}

// DELETE /api/v1/restaurants/:restaurantId/reviews/:reviewId
func (h *RestaurantHandler) DeleteReview(c *gin.Context) {
	reviewID := c.Param("reviewId")
	if err := h.restaurantSvc.DeleteReview(c.Request.Context(), c.Param("restaurantId"), reviewID); err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": reviewID})
}

package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/services"
)

type CuisineHandler struct {
	log        *logger.Logger
	cuisineSvc services.CuisineService
}

func NewCuisineHandler(log *logger.Logger, cuisineSvc services.CuisineService) *CuisineHandler {
	return &CuisineHandler{
		log:        log.With("handler", "CuisineHandler"),
		cuisineSvc: cuisineSvc,
	}
}

// GET /api/v1/cuisines
func (h *CuisineHandler) ListCuisines(c *gin.Context) {
	cuisines, err := h.cuisineSvc.ListCuisines(c.Request.Context())
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, cuisines)
}

// GET /api/v1/cuisines/:cuisine
func (h *CuisineHandler) ListRestaurantsByCuisine(c *gin.Context) {
	cuisine := strings.TrimSpace(c.Param("cuisine"))
	if cuisine == "" {
		RespondError(c, http.StatusBadRequest, apierr.CodeValidation, errors.New("valid cuisine parameter is required"))
		return
	}

	restaurants, err := h.cuisineSvc.ListRestaurantsByCuisine(c.Request.Context(), cuisine)
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, restaurants)
}

package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bites-backend/internal/apierr"
	"github.com/yungbote/bites-backend/internal/handlers"
	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/repos"
)

// CheckRestaurantExists rejects requests whose restaurantId path param does
// not name a stored restaurant, so downstream handlers can assume the record
// is there (or at least was, a moment ago).
func CheckRestaurantExists(log *logger.Logger, restaurantRepo repos.RestaurantRepo) gin.HandlerFunc {
	mwLog := log.With("middleware", "CheckRestaurantExists")
	return func(c *gin.Context) {
		restaurantID := c.Param("restaurantId")
		if restaurantID == "" {
			handlers.RespondError(c, http.StatusBadRequest, apierr.CodeValidation, errors.New("no restaurant id provided"))
			c.Abort()
			return
		}

		exists, err := restaurantRepo.Exists(c.Request.Context(), restaurantID)
		if err != nil {
			mwLog.Error("Failed to check restaurant existence", "restaurant_id", restaurantID, "error", err)
			handlers.RespondError(c, http.StatusServiceUnavailable, apierr.CodeStore, err)
			c.Abort()
			return
		}
		if !exists {
			handlers.RespondError(c, http.StatusNotFound, apierr.CodeNotFound, errors.New("restaurant not found"))
			c.Abort()
			return
		}
		c.Next()
	}
}

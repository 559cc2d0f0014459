package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/services"
)

type WeatherHandler struct {
	log        *logger.Logger
	weatherSvc services.WeatherService
}

func NewWeatherHandler(log *logger.Logger, weatherSvc services.WeatherService) *WeatherHandler {
	return &WeatherHandler{
		log:        log.With("handler", "WeatherHandler"),
		weatherSvc: weatherSvc,
	}
}

// GET /api/v1/restaurants/:restaurantId/weather
func (h *WeatherHandler) GetWeather(c *gin.Context) {
	payload, err := h.weatherSvc.GetWeather(c.Request.Context(), c.Param("restaurantId"))
	if err != nil {
		RespondAppError(c, err)
		return
	}
	RespondOK(c, json.RawMessage(payload))
}

// Package weather wraps the OpenWeather current-conditions endpoint. The
// payload is passed through untouched; only the top-level "cod" field is
// inspected to tell success from an upstream-reported failure.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/yungbote/bites-backend/internal/logger"
	"github.com/yungbote/bites-backend/internal/utils"
)

type Client interface {
	CurrentByCoords(ctx context.Context, lat, lon string) ([]byte, error)
}

// UpstreamError is returned when OpenWeather answers with a non-200 "cod".
type UpstreamError struct {
	Code    int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather upstream error (%d): %s", e.Code, e.Message)
}

type openWeatherClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	log        *logger.Logger
}

func NewOpenWeatherClient(log *logger.Logger) Client {
	clientLog := log.With("client", "OpenWeatherClient")
	apiKey := utils.GetEnv("WEATHER_API_KEY", "", log)
	if apiKey == "" {
		clientLog.Warn("WEATHER_API_KEY not set, upstream calls will be rejected")
	}
	baseURL := utils.GetEnv("WEATHER_API_URL", "https://api.openweathermap.org/data/2.5/weather", log)
	timeout := utils.GetEnvAsInt("WEATHER_TIMEOUT_SECONDS", 5, log)
	return &openWeatherClient{
		httpClient: &http.Client{Timeout: time.Duration(timeout) * time.Second},
		baseURL:    baseURL,
		apiKey:     apiKey,
		log:        clientLog,
	}
}

func (wc *openWeatherClient) CurrentByCoords(ctx context.Context, lat, lon string) ([]byte, error) {
	query := url.Values{}
	query.Set("lat", lat)
	query.Set("lon", lon)
	query.Set("appid", wc.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, wc.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := wc.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("weather response read: %w", err)
	}

	if err := checkCod(body); err != nil {
		return nil, err
	}
	return body, nil
}

// checkCod inspects the top-level "cod" field, which OpenWeather emits as a
// number on success and as a string on errors.
func checkCod(body []byte) error {
	var envelope struct {
		Cod     json.RawMessage `json:"cod"`
		Message string          `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("weather response parse: %w", err)
	}
	code, err := codAsInt(envelope.Cod)
	if err != nil {
		return fmt.Errorf("weather response parse: %w", err)
	}
	if code != http.StatusOK {
		return &UpstreamError{Code: code, Message: envelope.Message}
	}
	return nil
}

func codAsInt(raw json.RawMessage) (int, error) {
	if len(raw) == 0 {
		return 0, fmt.Errorf("missing cod field")
	}
	var asNumber int
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber, nil
	}
	var asString string
	if err := json.Unmarshal(raw, &asString); err != nil {
		return 0, err
	}
	return strconv.Atoi(asString)
}

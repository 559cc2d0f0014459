package weather

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"github.com/yungbote/bites-backend/internal/logger"
)

func testLogger() *logger.Logger {
	return &logger.Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func TestCheckCod(t *testing.T) {
	cases := []struct {
		name     string
		body     string
		wantErr  bool
		wantCode int
	}{
		{name: "numeric_ok", body: `{"cod":200,"weather":[]}`, wantErr: false},
		{name: "numeric_error", body: `{"cod":401,"message":"Invalid API key"}`, wantErr: true, wantCode: 401},
		{name: "string_error", body: `{"cod":"404","message":"city not found"}`, wantErr: true, wantCode: 404},
		{name: "missing_cod", body: `{}`, wantErr: true},
		{name: "not_json", body: `nope`, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := checkCod([]byte(tc.body))
			if !tc.wantErr {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error")
			}
			if tc.wantCode != 0 {
				var ue *UpstreamError
				if !errors.As(err, &ue) {
					t.Fatalf("expected UpstreamError, got %T", err)
				}
				if ue.Code != tc.wantCode {
					t.Fatalf("got code %d want %d", ue.Code, tc.wantCode)
				}
			}
		})
	}
}

func TestCurrentByCoordsPassesQueryParams(t *testing.T) {
	var gotLat, gotLon, gotKey string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLat = r.URL.Query().Get("lat")
		gotLon = r.URL.Query().Get("lon")
		gotKey = r.URL.Query().Get("appid")
		_, _ = w.Write([]byte(`{"cod":200,"weather":[{"main":"Rain"}]}`))
	}))
	defer ts.Close()

	t.Setenv("WEATHER_API_URL", ts.URL)
	t.Setenv("WEATHER_API_KEY", "test-key")

	client := NewOpenWeatherClient(testLogger())
	body, err := client.CurrentByCoords(context.Background(), "51.5085", "-0.1257")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(body) == 0 {
		t.Fatalf("expected payload")
	}
	if gotLat != "51.5085" || gotLon != "-0.1257" || gotKey != "test-key" {
		t.Fatalf("unexpected query: lat=%q lon=%q appid=%q", gotLat, gotLon, gotKey)
	}
}

func TestCurrentByCoordsUpstreamFailure(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer ts.Close()

	t.Setenv("WEATHER_API_URL", ts.URL)
	t.Setenv("WEATHER_API_KEY", "test-key")

	client := NewOpenWeatherClient(testLogger())
	_, err := client.CurrentByCoords(context.Background(), "0", "0")
	var ue *UpstreamError
	if !errors.As(err, &ue) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if ue.Code != 404 || ue.Message != "city not found" {
		t.Fatalf("unexpected upstream error: %+v", ue)
	}
}

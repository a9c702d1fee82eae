package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") != "47.6" {
			t.Errorf("expected latitude=47.6, got %q", q.Get("latitude"))
		}
		if q.Get("longitude") != "-122.33" {
			t.Errorf("expected longitude=-122.33, got %q", q.Get("longitude"))
		}
		if !strings.Contains(q.Get("current"), "temperature_2m") {
			t.Errorf("expected current fields in query, got %q", q.Get("current"))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"current":{"temperature_2m":12.4,"relative_humidity_2m":81,"wind_speed_10m":14.2,"wind_direction_10m":190,"weather_code":61,"time":"2026-03-01T18:45"}}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, 2*time.Second)
	obs, err := c.Fetch(context.Background(), 47.6, -122.33)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if obs.TemperatureC == nil || *obs.TemperatureC != 12.4 {
		t.Errorf("Fetch() temperature = %v, want 12.4", obs.TemperatureC)
	}
	if obs.HumidityPct == nil || *obs.HumidityPct != 81 {
		t.Errorf("Fetch() humidity = %v, want 81", obs.HumidityPct)
	}
	if obs.WeatherCode == nil || *obs.WeatherCode != 61 {
		t.Errorf("Fetch() weather code = %v, want 61", obs.WeatherCode)
	}
	if obs.Time != "2026-03-01T18:45" {
		t.Errorf("Fetch() time = %q, want %q", obs.Time, "2026-03-01T18:45")
	}
}

func TestFetch_PartialCurrent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"current":{"weather_code":3,"time":"2026-03-01T18:45"}}`))
	}))
	defer server.Close()

	c := NewOpenMeteoClient(server.URL, server.URL, 2*time.Second)
	obs, err := c.Fetch(context.Background(), 1, 2)
	if err != nil {
		t.Fatalf("Fetch() unexpected error: %v", err)
	}
	if obs.TemperatureC != nil {
		t.Errorf("Fetch() temperature = %v, want nil for omitted field", *obs.TemperatureC)
	}
	if obs.WindSpeedKmh != nil {
		t.Errorf("Fetch() wind speed = %v, want nil for omitted field", *obs.WindSpeedKmh)
	}
	if obs.WeatherCode == nil || *obs.WeatherCode != 3 {
		t.Errorf("Fetch() weather code = %v, want 3", obs.WeatherCode)
	}
}

func TestFetch_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "missing current section",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"latitude":47.6}`))
			},
		},
		{
			name: "malformed JSON",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"current"`))
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadGateway)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(tt.handler)
			defer server.Close()

			c := NewOpenMeteoClient(server.URL, server.URL, 2*time.Second)
			_, err := c.Fetch(context.Background(), 47.6, -122.33)
			if !errors.Is(err, ErrObservationUnavailable) {
				t.Errorf("Fetch() error = %v, want ErrObservationUnavailable", err)
			}
		})
	}
}

package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/avelinak/tool-endpoint-service/internal/models"
)

// Geocoder resolves a free-text location to coordinates and a canonical name.
type Geocoder interface {
	Resolve(ctx context.Context, query string) (models.Coordinates, error)
}

// ObservationFetcher retrieves current weather readings for coordinates.
type ObservationFetcher interface {
	Fetch(ctx context.Context, latitude, longitude float64) (models.RawObservation, error)
}

var (
	// ErrLocationNotFound covers no-match, transport, and parse failures of
	// the geocoding call. The orchestrator maps it to a typed error result.
	ErrLocationNotFound = errors.New("location not found")

	// ErrObservationUnavailable covers any failure to obtain usable current
	// readings from the forecast call.
	ErrObservationUnavailable = errors.New("observations unavailable")
)

// OpenMeteoClient talks to the two public Open-Meteo endpoints: geocoding
// and forecast. A single failed call yields an error immediately; there is
// no retry policy.
type OpenMeteoClient struct {
	geocodingURL string
	forecastURL  string
	client       *http.Client
}

// NewOpenMeteoClient returns a client for the given endpoint base URLs.
// timeout bounds each outbound call in addition to the request context.
func NewOpenMeteoClient(geocodingURL, forecastURL string, timeout time.Duration) *OpenMeteoClient {
	return &OpenMeteoClient{
		geocodingURL: geocodingURL,
		forecastURL:  forecastURL,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func statusLabel(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return "success"
	case statusCode >= 400 && statusCode < 500:
		return "client_error"
	case statusCode >= 500:
		return "server_error"
	default:
		return "error"
	}
}

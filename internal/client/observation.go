package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/avelinak/tool-endpoint-service/internal/models"
)

// currentFields is the fixed set of readings requested from the forecast API.
const currentFields = "temperature_2m,relative_humidity_2m,wind_speed_10m,wind_direction_10m,weather_code"

type forecastResponse struct {
	Current *models.RawObservation `json:"current"`
}

// Fetch retrieves current readings for the given coordinates. Transport
// failures, non-2xx responses, malformed bodies, and responses without a
// "current" section all map to ErrObservationUnavailable.
func (c *OpenMeteoClient) Fetch(ctx context.Context, latitude, longitude float64) (models.RawObservation, error) {
	start := time.Now()

	req, err := c.buildForecastRequest(ctx, latitude, longitude)
	if err != nil {
		observeUpstream("forecast", "error", start)
		return models.RawObservation{}, fmt.Errorf("%w: build request: %v", ErrObservationUnavailable, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observeUpstream("forecast", "error", start)
		return models.RawObservation{}, fmt.Errorf("%w: %v", ErrObservationUnavailable, err)
	}
	defer resp.Body.Close()

	observeUpstream("forecast", statusLabel(resp.StatusCode), start)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.RawObservation{}, fmt.Errorf("%w: HTTP %d", ErrObservationUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.RawObservation{}, fmt.Errorf("%w: read response body: %v", ErrObservationUnavailable, err)
	}

	var fr forecastResponse
	if err := json.Unmarshal(body, &fr); err != nil {
		return models.RawObservation{}, fmt.Errorf("%w: parse response: %v", ErrObservationUnavailable, err)
	}
	if fr.Current == nil {
		return models.RawObservation{}, fmt.Errorf("%w: no current section", ErrObservationUnavailable)
	}

	return *fr.Current, nil
}

func (c *OpenMeteoClient) buildForecastRequest(ctx context.Context, latitude, longitude float64) (*http.Request, error) {
	baseURL, err := url.Parse(c.forecastURL)
	if err != nil {
		return nil, fmt.Errorf("invalid forecast URL: %w", err)
	}

	params := url.Values{}
	params.Set("latitude", strconv.FormatFloat(latitude, 'f', -1, 64))
	params.Set("longitude", strconv.FormatFloat(longitude, 'f', -1, 64))
	params.Set("current", currentFields)
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avelinak/tool-endpoint-service/internal/models"
	"github.com/avelinak/tool-endpoint-service/internal/observability"
)

type geocodeResponse struct {
	Results []struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
		Name      string  `json:"name"`
		Admin1    string  `json:"admin1"`
		Country   string  `json:"country"`
	} `json:"results"`
}

// Resolve looks up query against the geocoding API, requesting exactly one
// English-language match. Every failure mode (transport, non-2xx, malformed
// body, empty result set) maps to ErrLocationNotFound.
func (c *OpenMeteoClient) Resolve(ctx context.Context, query string) (models.Coordinates, error) {
	start := time.Now()

	req, err := c.buildGeocodeRequest(ctx, query)
	if err != nil {
		observeUpstream("geocoding", "error", start)
		return models.Coordinates{}, fmt.Errorf("%w: build request: %v", ErrLocationNotFound, err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		observeUpstream("geocoding", "error", start)
		return models.Coordinates{}, fmt.Errorf("%w: %v", ErrLocationNotFound, err)
	}
	defer resp.Body.Close()

	observeUpstream("geocoding", statusLabel(resp.StatusCode), start)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return models.Coordinates{}, fmt.Errorf("%w: HTTP %d", ErrLocationNotFound, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: read response body: %v", ErrLocationNotFound, err)
	}

	var gr geocodeResponse
	if err := json.Unmarshal(body, &gr); err != nil {
		return models.Coordinates{}, fmt.Errorf("%w: parse response: %v", ErrLocationNotFound, err)
	}
	if len(gr.Results) == 0 {
		return models.Coordinates{}, ErrLocationNotFound
	}

	match := gr.Results[0]
	return models.Coordinates{
		Latitude:  match.Latitude,
		Longitude: match.Longitude,
		Name:      canonicalName(query, match.Name, match.Admin1, match.Country),
	}, nil
}

func (c *OpenMeteoClient) buildGeocodeRequest(ctx context.Context, query string) (*http.Request, error) {
	baseURL, err := url.Parse(c.geocodingURL)
	if err != nil {
		return nil, fmt.Errorf("invalid geocoding URL: %w", err)
	}

	params := url.Values{}
	params.Set("name", query)
	params.Set("count", "1")
	params.Set("language", "en")
	params.Set("format", "json")
	baseURL.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	return req, nil
}

// canonicalName joins place, region, and country with ", ", skipping empty
// components. Falls back to the original query when every part is empty.
func canonicalName(query string, parts ...string) string {
	var present []string
	for _, p := range parts {
		if p != "" {
			present = append(present, p)
		}
	}
	joined := strings.Join(present, ", ")
	if joined == "" {
		return query
	}
	return joined
}

func observeUpstream(api, status string, start time.Time) {
	observability.UpstreamCallsTotal.WithLabelValues(api, status).Inc()
	observability.UpstreamCallDuration.WithLabelValues(api, status).Observe(time.Since(start).Seconds())
}

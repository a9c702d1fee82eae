package weather

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avelinak/tool-endpoint-service/internal/client"
	"github.com/avelinak/tool-endpoint-service/internal/location"
	"github.com/avelinak/tool-endpoint-service/internal/models"
)

// Service orchestrates a single lookup: normalize, geocode, fetch, parse.
// Each invocation is independent and stateless; the two outbound calls run
// sequentially and are not retried.
type Service struct {
	geocoder client.Geocoder
	fetcher  client.ObservationFetcher
}

// NewService creates a Service over the given upstream clients.
func NewService(geocoder client.Geocoder, fetcher client.ObservationFetcher) *Service {
	return &Service{
		geocoder: geocoder,
		fetcher:  fetcher,
	}
}

// loggerFromContext extracts a request-scoped zap.Logger if middleware
// installed one. Returns nil otherwise.
func loggerFromContext(ctx context.Context) *zap.Logger {
	if v := ctx.Value("logger"); v != nil {
		if l, ok := v.(*zap.Logger); ok && l != nil {
			return l
		}
	}
	return nil
}

// Lookup runs the pipeline for a raw location string. It always returns a
// tagged outcome: a WeatherResult on success, a WeatherError otherwise. No
// fault escapes this boundary; even a panic in a downstream collaborator is
// converted into a generic error result.
func (s *Service) Lookup(ctx context.Context, rawLocation string) (outcome models.WeatherOutcome) {
	loc := location.Normalize(rawLocation)
	logger := loggerFromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			if logger != nil {
				logger.Error("weather lookup panic", zap.Any("panic", r), zap.String("location", loc))
			}
			outcome = models.ErrorOutcome(models.WeatherError{
				Location: loc,
				Message:  MsgLookupFailed,
				Source:   SourceTag,
			})
		}
	}()

	coords, err := s.geocoder.Resolve(ctx, loc)
	if err != nil {
		if logger != nil {
			logger.Debug("geocoding failed", zap.String("location", loc), zap.Error(err))
		}
		msg := MsgLookupFailed
		if errors.Is(err, client.ErrLocationNotFound) {
			msg = MsgLocationNotFound
		}
		return models.ErrorOutcome(models.WeatherError{
			Location: loc,
			Message:  msg,
			Source:   SourceTag,
		})
	}

	obs, err := s.fetcher.Fetch(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		if logger != nil {
			logger.Debug("observation fetch failed", zap.String("location", coords.Name), zap.Error(err))
		}
		msg := MsgLookupFailed
		if errors.Is(err, client.ErrObservationUnavailable) {
			msg = MsgObservationUnavailable
		}
		return models.ErrorOutcome(models.WeatherError{
			Location: coords.Name,
			Message:  msg,
			Source:   SourceTag,
		})
	}

	return models.ResultOutcome(Parse(obs, coords.Name))
}

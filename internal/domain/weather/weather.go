package weather

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrLocationNotFound indicates the provider does not know the location
var ErrLocationNotFound = errors.New("weather: location not found")

// UpstreamError carries a provider failure other than an unknown location
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("weather: provider returned %d: %s", e.StatusCode, e.Message)
}

// Observation is a single provider sample in metric units
type Observation struct {
	Timestamp     time.Time
	Temp          float64
	TempMin       float64
	TempMax       float64
	ConditionCode int
	Description   string
	Humidity      int
	WindSpeedMS   float64
}

// Provider is the outbound port for a third-party weather API
type Provider interface {
	// FetchCurrent returns the current conditions for a free-text location
	FetchCurrent(ctx context.Context, location string) (*Observation, string, error)

	// FetchForecast returns 3-hour forecast samples for a free-text location
	FetchForecast(ctx context.Context, location string) ([]Observation, string, error)
}

// Cache is an optional read-through cache for reshaped weather responses
type Cache interface {
	// Get returns the cached payload for a key, or (nil, nil) on a miss
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a payload under a key with a TTL
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
}

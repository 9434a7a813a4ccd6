package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	domain "github.com/wanderplan/backend/internal/domain/weather"
)

// maxResponseSize is the maximum allowed response size from the provider (1MB)
const maxResponseSize = 1 << 20

// OpenWeatherAdapter implements the weather.Provider port against the
// OpenWeather 2.5 API.
type OpenWeatherAdapter struct {
	config     *Config
	httpClient *http.Client
}

// NewOpenWeatherAdapter creates a new OpenWeather adapter with the given configuration
func NewOpenWeatherAdapter(config *Config) (*OpenWeatherAdapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &OpenWeatherAdapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// FetchCurrent returns the current conditions for a free-text location
func (a *OpenWeatherAdapter) FetchCurrent(ctx context.Context, location string) (*domain.Observation, string, error) {
	body, err := a.get(ctx, "/weather", location)
	if err != nil {
		return nil, "", err
	}

	var resp currentResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("openweather: decode current response: %w", err)
	}

	obs := &domain.Observation{
		Timestamp:   time.Now(),
		Temp:        resp.Main.Temp,
		TempMin:     resp.Main.TempMin,
		TempMax:     resp.Main.TempMax,
		Humidity:    resp.Main.Humidity,
		WindSpeedMS: resp.Wind.Speed,
	}
	if len(resp.Weather) > 0 {
		obs.ConditionCode = resp.Weather[0].ID
		obs.Description = resp.Weather[0].Description
	}

	return obs, resp.Name, nil
}

// FetchForecast returns 3-hour forecast samples for a free-text location
func (a *OpenWeatherAdapter) FetchForecast(ctx context.Context, location string) ([]domain.Observation, string, error) {
	body, err := a.get(ctx, "/forecast", location)
	if err != nil {
		return nil, "", err
	}

	var resp forecastResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, "", fmt.Errorf("openweather: decode forecast response: %w", err)
	}

	samples := make([]domain.Observation, 0, len(resp.List))
	for _, entry := range resp.List {
		obs := domain.Observation{
			Timestamp:   time.Unix(entry.Dt, 0).UTC(),
			Temp:        entry.Main.Temp,
			TempMin:     entry.Main.TempMin,
			TempMax:     entry.Main.TempMax,
			Humidity:    entry.Main.Humidity,
			WindSpeedMS: entry.Wind.Speed,
		}
		if len(entry.Weather) > 0 {
			obs.ConditionCode = entry.Weather[0].ID
			obs.Description = entry.Weather[0].Description
		}
		samples = append(samples, obs)
	}

	return samples, resp.City.Name, nil
}

// get performs a provider request and maps error statuses to domain errors
func (a *OpenWeatherAdapter) get(ctx context.Context, path, location string) ([]byte, error) {
	values := url.Values{}
	values.Set("q", location)
	values.Set("units", "metric")
	values.Set("appid", a.config.APIKey)

	endpoint := a.config.BaseURL + path + "?" + values.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openweather: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("openweather: read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return body, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrLocationNotFound
	default:
		var errResp errorResponse
		_ = json.Unmarshal(body, &errResp)
		message := errResp.Message
		if message == "" {
			message = http.StatusText(resp.StatusCode)
		}
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, Message: message}
	}
}

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"sort"
	"strings"
	"time"
	"unicode"

	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/weather"
	"go.uber.org/zap"
)

const forecastDays = 5

// WeatherService reshapes provider observations into the client contract.
// A nil cache disables caching; cache failures are logged and ignored.
type WeatherService struct {
	provider weather.Provider
	cache    weather.Cache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewWeatherService creates a new weather service
func NewWeatherService(provider weather.Provider, cache weather.Cache, cacheTTL time.Duration, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		provider: provider,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// GetWeather returns current conditions plus the daily forecast. The two
// provider calls run concurrently.
func (s *WeatherService) GetWeather(ctx context.Context, location string) (*WeatherReport, error) {
	if report, ok := s.cacheRead(ctx, "full", location); ok {
		return report, nil
	}

	type currentResult struct {
		obs  *weather.Observation
		city string
		err  error
	}
	type forecastResult struct {
		samples []weather.Observation
		city    string
		err     error
	}

	currentCh := make(chan currentResult, 1)
	forecastCh := make(chan forecastResult, 1)

	go func() {
		obs, city, err := s.provider.FetchCurrent(ctx, location)
		currentCh <- currentResult{obs: obs, city: city, err: err}
	}()
	go func() {
		samples, city, err := s.provider.FetchForecast(ctx, location)
		forecastCh <- forecastResult{samples: samples, city: city, err: err}
	}()

	current := <-currentCh
	forecast := <-forecastCh

	if current.err != nil {
		return nil, mapProviderError(current.err)
	}
	if forecast.err != nil {
		return nil, mapProviderError(forecast.err)
	}

	report := &WeatherReport{
		Location: pickLocation(current.city, location),
		Current:  reshapeCurrent(current.obs),
		Forecast: s.reshapeForecast(forecast.samples),
	}

	s.cacheWrite(ctx, "full", location, report)
	return report, nil
}

// GetCurrent returns only the current conditions
func (s *WeatherService) GetCurrent(ctx context.Context, location string) (*WeatherReport, error) {
	if report, ok := s.cacheRead(ctx, "current", location); ok {
		return report, nil
	}

	obs, city, err := s.provider.FetchCurrent(ctx, location)
	if err != nil {
		return nil, mapProviderError(err)
	}

	report := &WeatherReport{
		Location: pickLocation(city, location),
		Current:  reshapeCurrent(obs),
	}

	s.cacheWrite(ctx, "current", location, report)
	return report, nil
}

// GetForecast returns only the daily forecast
func (s *WeatherService) GetForecast(ctx context.Context, location string) (*WeatherReport, error) {
	if report, ok := s.cacheRead(ctx, "forecast", location); ok {
		return report, nil
	}

	samples, city, err := s.provider.FetchForecast(ctx, location)
	if err != nil {
		return nil, mapProviderError(err)
	}

	report := &WeatherReport{
		Location: pickLocation(city, location),
		Forecast: s.reshapeForecast(samples),
	}

	s.cacheWrite(ctx, "forecast", location, report)
	return report, nil
}

func (s *WeatherService) cacheKey(kind, location string) string {
	return kind + ":" + strings.ToLower(strings.TrimSpace(location))
}

func (s *WeatherService) cacheRead(ctx context.Context, kind, location string) (*WeatherReport, bool) {
	if s.cache == nil {
		return nil, false
	}
	payload, err := s.cache.Get(ctx, s.cacheKey(kind, location))
	if err != nil {
		s.logger.Warn("Weather cache read failed", zap.Error(err))
		return nil, false
	}
	if payload == nil {
		return nil, false
	}
	var report WeatherReport
	if err := json.Unmarshal(payload, &report); err != nil {
		s.logger.Warn("Weather cache payload corrupt", zap.Error(err))
		return nil, false
	}
	return &report, true
}

func (s *WeatherService) cacheWrite(ctx context.Context, kind, location string, report *WeatherReport) {
	if s.cache == nil {
		return
	}
	payload, err := json.Marshal(report)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, s.cacheKey(kind, location), payload, s.cacheTTL); err != nil {
		s.logger.Warn("Weather cache write failed", zap.Error(err))
	}
}

func mapProviderError(err error) error {
	if errors.Is(err, weather.ErrLocationNotFound) {
		return shared.NewDomainError("LOCATION_NOT_FOUND", "Location not found")
	}
	var upstream *weather.UpstreamError
	if errors.As(err, &upstream) {
		return shared.NewDomainError("WEATHER_UPSTREAM", upstream.Message)
	}
	return shared.NewDomainError("WEATHER_UPSTREAM", "Failed to fetch weather data")
}

func pickLocation(city, requested string) string {
	if city != "" {
		return city
	}
	return strings.TrimSpace(requested)
}

func reshapeCurrent(obs *weather.Observation) *CurrentWeather {
	return &CurrentWeather{
		Temperature: roundToInt(obs.Temp),
		Condition:   titleCase(obs.Description),
		Humidity:    obs.Humidity,
		WindSpeed:   roundToInt(obs.WindSpeedMS * 3.6),
		Icon:        iconForCode(obs.ConditionCode),
	}
}

// reshapeForecast buckets 3-hour samples by calendar date, reduces each
// day to its high/low and takes the middle sample's condition as
// representative.
func (s *WeatherService) reshapeForecast(samples []weather.Observation) []ForecastDay {
	buckets := make(map[string][]weather.Observation)
	order := make([]string, 0)
	for _, sample := range samples {
		date := sample.Timestamp.Format("2006-01-02")
		if _, seen := buckets[date]; !seen {
			order = append(order, date)
		}
		buckets[date] = append(buckets[date], sample)
	}
	sort.Strings(order)

	if len(order) > forecastDays {
		order = order[:forecastDays]
	}

	today := s.now().Format("2006-01-02")
	tomorrow := s.now().AddDate(0, 0, 1).Format("2006-01-02")

	forecast := make([]ForecastDay, 0, len(order))
	for _, date := range order {
		daySamples := buckets[date]
		high := daySamples[0].TempMax
		low := daySamples[0].TempMin
		for _, sample := range daySamples[1:] {
			high = math.Max(high, sample.TempMax)
			low = math.Min(low, sample.TempMin)
		}
		middle := daySamples[len(daySamples)/2]

		forecast = append(forecast, ForecastDay{
			Day:       dayLabel(date, today, tomorrow, middle.Timestamp),
			High:      roundToInt(high),
			Low:       roundToInt(low),
			Condition: titleCase(middle.Description),
			Icon:      iconForCode(middle.ConditionCode),
		})
	}
	return forecast
}

func dayLabel(date, today, tomorrow string, sampleTime time.Time) string {
	switch date {
	case today:
		return "Today"
	case tomorrow:
		return "Tomorrow"
	default:
		return sampleTime.Weekday().String()
	}
}

// iconForCode maps provider condition-code families to display icons
func iconForCode(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "⛈️"
	case code >= 300 && code < 400:
		return "🌧️"
	case code >= 500 && code < 600:
		return "🌧️"
	case code >= 600 && code < 700:
		return "❄️"
	case code >= 700 && code < 800:
		return "🌫️"
	case code == 800:
		return "☀️"
	case code == 801:
		return "⛅"
	case code >= 802 && code <= 804:
		return "☁️"
	default:
		return "🌤️"
	}
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

func roundToInt(v float64) int {
	return int(math.Round(v))
}

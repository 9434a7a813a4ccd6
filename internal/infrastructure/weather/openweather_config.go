package weather

import "errors"

// Config errors
var (
	ErrConfigMissingAPIKey  = errors.New("openweather: missing API key")
	ErrConfigMissingBaseURL = errors.New("openweather: missing base URL")
)

// DefaultBaseURL is the OpenWeather 2.5 API root
const DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

// Config holds OpenWeather adapter configuration
type Config struct {
	APIKey         string
	BaseURL        string
	TimeoutSeconds int
}

// Validate checks that the configuration is complete
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return ErrConfigMissingAPIKey
	}
	if c.BaseURL == "" {
		return ErrConfigMissingBaseURL
	}
	return nil
}

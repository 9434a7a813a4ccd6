package weather

// CurrentWeather is current conditions reshaped for the client.
// Temperatures are Celsius, wind speed is km/h.
type CurrentWeather struct {
	Temperature int    `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Icon        string `json:"icon"`
}

// ForecastDay is one daily forecast entry
type ForecastDay struct {
	Day       string `json:"day"`
	High      int    `json:"high"`
	Low       int    `json:"low"`
	Condition string `json:"condition"`
	Icon      string `json:"icon"`
}

// WeatherReport is the combined response for a location. Either section
// may be nil when only one of current/forecast was requested.
type WeatherReport struct {
	Location string          `json:"location"`
	Current  *CurrentWeather `json:"current,omitempty"`
	Forecast []ForecastDay   `json:"forecast,omitempty"`
}

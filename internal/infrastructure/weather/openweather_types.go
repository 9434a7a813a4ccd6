package weather

// conditionEntry is one entry in the provider's weather array
type conditionEntry struct {
	ID          int    `json:"id"`
	Main        string `json:"main"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// mainBlock carries temperatures and humidity
type mainBlock struct {
	Temp     float64 `json:"temp"`
	TempMin  float64 `json:"temp_min"`
	TempMax  float64 `json:"temp_max"`
	Humidity int     `json:"humidity"`
}

// windBlock carries wind speed in m/s (metric units)
type windBlock struct {
	Speed float64 `json:"speed"`
}

// currentResponse is the /weather response
type currentResponse struct {
	Weather []conditionEntry `json:"weather"`
	Main    mainBlock        `json:"main"`
	Wind    windBlock        `json:"wind"`
	Name    string           `json:"name"`
}

// forecastSample is one 3-hour step in the /forecast response
type forecastSample struct {
	Dt      int64            `json:"dt"`
	Main    mainBlock        `json:"main"`
	Weather []conditionEntry `json:"weather"`
	Wind    windBlock        `json:"wind"`
}

// forecastResponse is the /forecast response
type forecastResponse struct {
	List []forecastSample `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

// errorResponse is the provider's error payload. The cod field is a string
// in error responses and a number in success responses.
type errorResponse struct {
	Message string `json:"message"`
}

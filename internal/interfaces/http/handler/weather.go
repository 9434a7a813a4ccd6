package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/wanderplan/backend/internal/application/weather"
	"github.com/wanderplan/backend/internal/interfaces/http/router"
)

// WeatherHandler proxies weather lookups for a destination
type WeatherHandler struct {
	BaseHandler
	weatherService *weather.WeatherService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(weatherService *weather.WeatherService) *WeatherHandler {
	return &WeatherHandler{weatherService: weatherService}
}

// Routes returns the weather route group
func (h *WeatherHandler) Routes() *router.DomainGroup {
	group := router.NewDomainGroup("weather", "/weather")
	group.GET("/current/:location", h.Current)
	group.GET("/forecast/:location", h.Forecast)
	group.GET("/:location", h.Combined)
	return group
}

// Combined returns current conditions plus the daily forecast
func (h *WeatherHandler) Combined(c *gin.Context) {
	report, err := h.weatherService.GetWeather(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Current returns current conditions only
func (h *WeatherHandler) Current(c *gin.Context) {
	report, err := h.weatherService.GetCurrent(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

// Forecast returns the daily forecast only
func (h *WeatherHandler) Forecast(c *gin.Context) {
	report, err := h.weatherService.GetForecast(c.Request.Context(), c.Param("location"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, report)
}

package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{"TRIP_NOT_FOUND", http.StatusNotFound},
		{"BUDGET_EXISTS", http.StatusConflict},
		{"EMAIL_IN_USE", http.StatusConflict},
		{"INVALID_CREDENTIALS", http.StatusUnauthorized},
		{"DESTINATION_REQUIRED", http.StatusBadRequest},
		{"WEATHER_UPSTREAM", http.StatusInternalServerError},
		{"SOMETHING_UNMAPPED", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestErrorResponses(t *testing.T) {
	resp := NewErrorResponseWithRequestID("TRIP_NOT_FOUND", "Trip not found", "req-123")
	assert.False(t, resp.Success)
	assert.Equal(t, "TRIP_NOT_FOUND", resp.Error.Code)
	assert.Equal(t, "req-123", resp.Meta.RequestID)

	detailed := NewErrorResponseWithDetails("WEATHER_UPSTREAM", "Failed to fetch weather data", "provider down", "")
	assert.Equal(t, "provider down", detailed.Error.Details)
	assert.Nil(t, detailed.Meta)
}

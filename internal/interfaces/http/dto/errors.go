package dto

import "net/http"

// General error codes
const (
	ErrCodeInternal   = "INTERNAL_ERROR"
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeValidation = "VALIDATION_ERROR"
)

// Authentication error codes
const (
	ErrCodeUnauthorized       = "UNAUTHORIZED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeTokenInvalid       = "INVALID_TOKEN"
	ErrCodeForbidden          = "FORBIDDEN"
)

// Resource error codes
const (
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	ErrCodeRateLimited   = "RATE_LIMIT_EXCEEDED"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes not listed here default to 500.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeForbidden:          http.StatusForbidden,

	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeRateLimited:   http.StatusTooManyRequests,

	// Input validation raised by the domain layer
	"INVALID_INPUT":        http.StatusBadRequest,
	"INVALID_EMAIL":        http.StatusBadRequest,
	"INVALID_USERNAME":     http.StatusBadRequest,
	"INVALID_PASSWORD":     http.StatusBadRequest,
	"INVALID_NAME":         http.StatusBadRequest,
	"INVALID_LIMIT":        http.StatusBadRequest,
	"INVALID_AMOUNT":       http.StatusBadRequest,
	"INVALID_TASK":         http.StatusBadRequest,
	"INVALID_TRIP_ID":      http.StatusBadRequest,
	"INVALID_OWNER":        http.StatusBadRequest,
	"DESTINATION_REQUIRED": http.StatusBadRequest,

	// Lookups scoped to the authenticated user
	"USER_NOT_FOUND":     http.StatusNotFound,
	"TRIP_NOT_FOUND":     http.StatusNotFound,
	"BUDGET_NOT_FOUND":   http.StatusNotFound,
	"LOCATION_NOT_FOUND": http.StatusNotFound,
	"TASK_NOT_FOUND":     http.StatusNotFound,
	"EXPENSE_NOT_FOUND":  http.StatusNotFound,

	// Conflicts
	"EMAIL_IN_USE":  http.StatusConflict,
	"BUDGET_EXISTS": http.StatusConflict,

	// Weather proxy failures other than an unknown location
	"WEATHER_UPSTREAM": http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status for an error code
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

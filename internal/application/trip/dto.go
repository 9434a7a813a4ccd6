package trip

import (
	"time"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/trip"
)

// DayInput is one itinerary day as supplied by the client
type DayInput struct {
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
}

// CreateTripInput contains the input for trip creation. Every field is
// optional; normalization supplies the defaults.
type CreateTripInput struct {
	Destination string
	StartDate   string
	EndDate     string
	Days        []DayInput
}

// UpdateTripInput contains a partial update. Nil fields were absent from
// the request body and must be left untouched.
type UpdateTripInput struct {
	Destination *string
	StartDate   *string
	EndDate     *string
	Days        *[]DayInput
}

// DayInfo is one itinerary day as returned to the client
type DayInfo struct {
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
}

// TripInfo is the trip representation returned to the client
type TripInfo struct {
	ID          uuid.UUID `json:"id"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Days        []DayInfo `json:"days"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toDomainDays(days []DayInput) []trip.TripDay {
	result := make([]trip.TripDay, 0, len(days))
	for _, day := range days {
		result = append(result, trip.TripDay{
			Date:       day.Date,
			Activities: day.Activities,
		})
	}
	return result
}

func toTripInfo(t *trip.Trip) *TripInfo {
	days := make([]DayInfo, 0, len(t.Days))
	for _, day := range t.Days {
		days = append(days, DayInfo{
			Date:       day.Date,
			Activities: day.Activities,
		})
	}
	return &TripInfo{
		ID:          t.ID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		Days:        days,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toTripInfos(trips []*trip.Trip) []*TripInfo {
	result := make([]*TripInfo, 0, len(trips))
	for _, t := range trips {
		result = append(result, toTripInfo(t))
	}
	return result
}

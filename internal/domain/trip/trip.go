package trip

import (
	"strings"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/shared"
)

// DefaultDestination is used when a trip is created or updated with a
// blank destination.
const DefaultDestination = "Untitled trip"

// TripDay is one calendar entry in a trip's itinerary
type TripDay struct {
	Date       string   `json:"date"`
	Activities []string `json:"activities"`
}

// Trip represents a planned journey with an ordered day-by-day itinerary.
// Start and end dates are free-form strings, not validated calendar dates.
type Trip struct {
	shared.BaseEntity
	UserID      uuid.UUID
	Destination string
	StartDate   string
	EndDate     string
	Days        []TripDay
}

// NewTrip creates a trip with normalized destination and days
func NewTrip(userID uuid.UUID, destination, startDate, endDate string, days []TripDay) (*Trip, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}

	return &Trip{
		BaseEntity:  shared.NewBaseEntity(),
		UserID:      userID,
		Destination: NormalizeDestination(destination),
		StartDate:   startDate,
		EndDate:     endDate,
		Days:        NormalizeDays(days),
	}, nil
}

// SetDestination replaces the destination, applying the blank default
func (t *Trip) SetDestination(destination string) {
	t.Destination = NormalizeDestination(destination)
	t.Touch()
}

// SetStartDate replaces the start date
func (t *Trip) SetStartDate(startDate string) {
	t.StartDate = startDate
	t.Touch()
}

// SetEndDate replaces the end date
func (t *Trip) SetEndDate(endDate string) {
	t.EndDate = endDate
	t.Touch()
}

// SetDays replaces the itinerary, normalizing each day
func (t *Trip) SetDays(days []TripDay) {
	t.Days = NormalizeDays(days)
	t.Touch()
}

// NormalizeDestination trims the destination and falls back to the default
// when nothing remains.
func NormalizeDestination(destination string) string {
	destination = strings.TrimSpace(destination)
	if destination == "" {
		return DefaultDestination
	}
	return destination
}

// NormalizeDays strips blank activities and drops days that end up with
// neither a date nor any activity.
func NormalizeDays(days []TripDay) []TripDay {
	normalized := make([]TripDay, 0, len(days))
	for _, day := range days {
		activities := make([]string, 0, len(day.Activities))
		for _, activity := range day.Activities {
			activity = strings.TrimSpace(activity)
			if activity != "" {
				activities = append(activities, activity)
			}
		}
		if day.Date == "" && len(activities) == 0 {
			continue
		}
		normalized = append(normalized, TripDay{
			Date:       day.Date,
			Activities: activities,
		})
	}
	return normalized
}

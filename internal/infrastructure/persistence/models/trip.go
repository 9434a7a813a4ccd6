package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/trip"
)

// TripModel is the persistence model for trips. The itinerary is stored as
// a JSON document in a single column, mirroring the aggregate boundary.
type TripModel struct {
	BaseModel
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Destination string    `gorm:"size:500;not null"`
	StartDate   string    `gorm:"size:50"`
	EndDate     string    `gorm:"size:50"`
	DaysJSON    string    `gorm:"column:days;type:jsonb;default:'[]'"`
}

// TableName returns the table name for TripModel
func (TripModel) TableName() string {
	return "trips"
}

// ToDomain converts TripModel to a domain Trip
func (m *TripModel) ToDomain() (*trip.Trip, error) {
	days := make([]trip.TripDay, 0)
	if m.DaysJSON != "" {
		if err := json.Unmarshal([]byte(m.DaysJSON), &days); err != nil {
			return nil, err
		}
	}

	return &trip.Trip{
		BaseEntity:  m.BaseModel.ToDomain(),
		UserID:      m.UserID,
		Destination: m.Destination,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Days:        days,
	}, nil
}

// TripModelFromDomain creates a TripModel from a domain Trip
func TripModelFromDomain(t *trip.Trip) (*TripModel, error) {
	days := t.Days
	if days == nil {
		days = make([]trip.TripDay, 0)
	}
	daysJSON, err := json.Marshal(days)
	if err != nil {
		return nil, err
	}

	m := &TripModel{
		UserID:      t.UserID,
		Destination: t.Destination,
		StartDate:   t.StartDate,
		EndDate:     t.EndDate,
		DaysJSON:    string(daysJSON),
	}
	m.FromDomainBaseEntity(t.BaseEntity)
	return m, nil
}

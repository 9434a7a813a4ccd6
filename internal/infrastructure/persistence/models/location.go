package models

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/geo"
)

// MapLocationModel is the persistence model for saved map locations.
// Photos and tasks are embedded as JSON documents.
type MapLocationModel struct {
	BaseModel
	UserID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"size:500;not null"`
	Lat        float64   `gorm:"not null"`
	Lng        float64   `gorm:"not null"`
	Note       string    `gorm:"type:text"`
	PhotosJSON string    `gorm:"column:photos;type:jsonb;default:'[]'"`
	TasksJSON  string    `gorm:"column:tasks;type:jsonb;default:'[]'"`
}

// TableName returns the table name for MapLocationModel
func (MapLocationModel) TableName() string {
	return "map_locations"
}

// ToDomain converts MapLocationModel to a domain MapLocation
func (m *MapLocationModel) ToDomain() (*geo.MapLocation, error) {
	photos := make([]string, 0)
	if m.PhotosJSON != "" {
		if err := json.Unmarshal([]byte(m.PhotosJSON), &photos); err != nil {
			return nil, err
		}
	}

	tasks := make([]geo.LocationTask, 0)
	if m.TasksJSON != "" {
		if err := json.Unmarshal([]byte(m.TasksJSON), &tasks); err != nil {
			return nil, err
		}
	}

	return &geo.MapLocation{
		BaseEntity: m.BaseModel.ToDomain(),
		UserID:     m.UserID,
		Title:      m.Title,
		Lat:        m.Lat,
		Lng:        m.Lng,
		Note:       m.Note,
		Photos:     photos,
		Tasks:      tasks,
	}, nil
}

// MapLocationModelFromDomain creates a MapLocationModel from a domain MapLocation
func MapLocationModelFromDomain(l *geo.MapLocation) (*MapLocationModel, error) {
	photos := l.Photos
	if photos == nil {
		photos = make([]string, 0)
	}
	photosJSON, err := json.Marshal(photos)
	if err != nil {
		return nil, err
	}

	tasks := l.Tasks
	if tasks == nil {
		tasks = make([]geo.LocationTask, 0)
	}
	tasksJSON, err := json.Marshal(tasks)
	if err != nil {
		return nil, err
	}

	m := &MapLocationModel{
		UserID:     l.UserID,
		Title:      l.Title,
		Lat:        l.Lat,
		Lng:        l.Lng,
		Note:       l.Note,
		PhotosJSON: string(photosJSON),
		TasksJSON:  string(tasksJSON),
	}
	m.FromDomainBaseEntity(l.BaseEntity)
	return m, nil
}

package geo

import (
	"time"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/geo"
)

// CreateLocationInput contains the input for saving a map location
type CreateLocationInput struct {
	Title string
	Lat   float64
	Lng   float64
	Note  string
}

// UpdateLocationInput contains a partial update. Nil fields were absent
// from the request body and must be left untouched.
type UpdateLocationInput struct {
	Title *string
	Lat   *float64
	Lng   *float64
	Note  *string
}

// AddTaskInput contains the input for adding a checklist item
type AddTaskInput struct {
	Text string
}

// UpdateTaskInput contains a partial checklist-item update
type UpdateTaskInput struct {
	Text *string
	Done *bool
}

// TaskInfo is the checklist-item representation returned to the client
type TaskInfo struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
}

// LocationInfo is the saved-location representation returned to the client
type LocationInfo struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	Lat       float64    `json:"lat"`
	Lng       float64    `json:"lng"`
	Note      string     `json:"note"`
	Photos    []string   `json:"photos"`
	Tasks     []TaskInfo `json:"tasks"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toLocationInfo(l *geo.MapLocation) *LocationInfo {
	tasks := make([]TaskInfo, 0, len(l.Tasks))
	for _, task := range l.Tasks {
		tasks = append(tasks, TaskInfo(task))
	}
	photos := l.Photos
	if photos == nil {
		photos = make([]string, 0)
	}
	return &LocationInfo{
		ID:        l.ID,
		Title:     l.Title,
		Lat:       l.Lat,
		Lng:       l.Lng,
		Note:      l.Note,
		Photos:    photos,
		Tasks:     tasks,
		CreatedAt: l.CreatedAt,
		UpdatedAt: l.UpdatedAt,
	}
}

func toLocationInfos(locations []*geo.MapLocation) []*LocationInfo {
	result := make([]*LocationInfo, 0, len(locations))
	for _, l := range locations {
		result = append(result, toLocationInfo(l))
	}
	return result
}

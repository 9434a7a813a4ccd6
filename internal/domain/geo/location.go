package geo

import (
	"strings"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/shared"
)

// DefaultTitle is used when a location is saved without a title
const DefaultTitle = "Untitled"

// photoPrefix is the required prefix for stored photos. Photos are inline
// base64 data URIs, not object-store references.
const photoPrefix = "data:image/"

// LocationTask is one checklist item attached to a saved location
type LocationTask struct {
	ID   uuid.UUID `json:"id"`
	Text string    `json:"text"`
	Done bool      `json:"done"`
}

// MapLocation is a saved point of interest with coordinates, a note,
// inline photos and a task checklist.
type MapLocation struct {
	shared.BaseEntity
	UserID uuid.UUID
	Title  string
	Lat    float64
	Lng    float64
	Note   string
	Photos []string
	Tasks  []LocationTask
}

// NewMapLocation creates a saved location
func NewMapLocation(userID uuid.UUID, title string, lat, lng float64, note string) (*MapLocation, error) {
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_OWNER", "Owner ID cannot be empty")
	}

	return &MapLocation{
		BaseEntity: shared.NewBaseEntity(),
		UserID:     userID,
		Title:      normalizeTitle(title),
		Lat:        lat,
		Lng:        lng,
		Note:       note,
		Photos:     make([]string, 0),
		Tasks:      make([]LocationTask, 0),
	}, nil
}

// SetTitle replaces the title, applying the blank default
func (l *MapLocation) SetTitle(title string) {
	l.Title = normalizeTitle(title)
	l.Touch()
}

// SetCoordinates replaces the coordinate pair
func (l *MapLocation) SetCoordinates(lat, lng float64) {
	l.Lat = lat
	l.Lng = lng
	l.Touch()
}

// SetNote replaces the note
func (l *MapLocation) SetNote(note string) {
	l.Note = note
	l.Touch()
}

// AddPhotos appends data-URI photos. Entries that are not image data URIs
// are silently dropped; a partial batch never fails the whole request.
func (l *MapLocation) AddPhotos(photos []string) int {
	added := 0
	for _, photo := range photos {
		if !IsPhotoDataURI(photo) {
			continue
		}
		l.Photos = append(l.Photos, photo)
		added++
	}
	if added > 0 {
		l.Touch()
	}
	return added
}

// IsPhotoDataURI reports whether a string is an inline image data URI
func IsPhotoDataURI(s string) bool {
	return strings.HasPrefix(s, photoPrefix) && strings.Contains(s, ";base64,")
}

// AddTask appends a checklist item. New tasks always start not done.
func (l *MapLocation) AddTask(text string) (*LocationTask, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, shared.NewDomainError("INVALID_TASK", "Task text is required")
	}

	task := LocationTask{
		ID:   uuid.New(),
		Text: text,
		Done: false,
	}
	l.Tasks = append(l.Tasks, task)
	l.Touch()
	return &task, nil
}

// UpdateTask patches a checklist item. Nil fields are left untouched.
func (l *MapLocation) UpdateTask(taskID uuid.UUID, text *string, done *bool) (*LocationTask, error) {
	idx := l.taskIndex(taskID)
	if idx < 0 {
		return nil, shared.ErrNotFound
	}

	task := &l.Tasks[idx]
	if text != nil {
		trimmed := strings.TrimSpace(*text)
		if trimmed == "" {
			return nil, shared.NewDomainError("INVALID_TASK", "Task text is required")
		}
		task.Text = trimmed
	}
	if done != nil {
		task.Done = *done
	}

	l.Touch()
	return task, nil
}

// RemoveTask deletes a checklist item by ID
func (l *MapLocation) RemoveTask(taskID uuid.UUID) error {
	idx := l.taskIndex(taskID)
	if idx < 0 {
		return shared.ErrNotFound
	}
	l.Tasks = append(l.Tasks[:idx], l.Tasks[idx+1:]...)
	l.Touch()
	return nil
}

func (l *MapLocation) taskIndex(taskID uuid.UUID) int {
	for i := range l.Tasks {
		if l.Tasks[i].ID == taskID {
			return i
		}
	}
	return -1
}

func normalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return DefaultTitle
	}
	return title
}

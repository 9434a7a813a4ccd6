package geo

import (
	"context"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/geo"
	"github.com/wanderplan/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LocationService handles saved map locations, their inline photos and
// checklist tasks
type LocationService struct {
	locationRepo geo.LocationRepository
	logger       *zap.Logger
}

// NewLocationService creates a new location service
func NewLocationService(locationRepo geo.LocationRepository, logger *zap.Logger) *LocationService {
	return &LocationService{
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// CreateLocation saves a map location for the authenticated user
func (s *LocationService) CreateLocation(ctx context.Context, userID uuid.UUID, input CreateLocationInput) (*LocationInfo, error) {
	l, err := geo.NewMapLocation(userID, input.Title, input.Lat, input.Lng, input.Note)
	if err != nil {
		return nil, err
	}

	if err := s.locationRepo.Create(ctx, l); err != nil {
		s.logger.Error("Failed to create location", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create location")
	}

	s.logger.Info("Location created",
		zap.String("location_id", l.ID.String()),
		zap.String("user_id", userID.String()))

	return toLocationInfo(l), nil
}

// loadLocation fetches an owner's location, mapping a miss to the location
// domain error and anything else to an internal failure.
func (s *LocationService) loadLocation(ctx context.Context, userID, locationID uuid.UUID) (*geo.MapLocation, error) {
	l, err := s.locationRepo.FindByID(ctx, userID, locationID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("LOCATION_NOT_FOUND", "Location not found")
		}
		s.logger.Error("Failed to load location", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load location")
	}
	return l, nil
}

// GetLocation returns one of the user's saved locations
func (s *LocationService) GetLocation(ctx context.Context, userID, locationID uuid.UUID) (*LocationInfo, error) {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}
	return toLocationInfo(l), nil
}

// ListLocations returns the user's saved locations, newest first
func (s *LocationService) ListLocations(ctx context.Context, userID uuid.UUID) ([]*LocationInfo, error) {
	locations, err := s.locationRepo.FindAllByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list locations", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list locations")
	}
	return toLocationInfos(locations), nil
}

// UpdateLocation applies a partial update
func (s *LocationService) UpdateLocation(ctx context.Context, userID, locationID uuid.UUID, input UpdateLocationInput) (*LocationInfo, error) {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		l.SetTitle(*input.Title)
	}
	if input.Lat != nil || input.Lng != nil {
		lat, lng := l.Lat, l.Lng
		if input.Lat != nil {
			lat = *input.Lat
		}
		if input.Lng != nil {
			lng = *input.Lng
		}
		l.SetCoordinates(lat, lng)
	}
	if input.Note != nil {
		l.SetNote(*input.Note)
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to update location", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update location")
	}

	return toLocationInfo(l), nil
}

// DeleteLocation deletes one of the user's saved locations
func (s *LocationService) DeleteLocation(ctx context.Context, userID, locationID uuid.UUID) error {
	if err := s.locationRepo.Delete(ctx, userID, locationID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("LOCATION_NOT_FOUND", "Location not found")
		}
		s.logger.Error("Failed to delete location", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete location")
	}
	return nil
}

// AddPhotos appends inline photos to a location. Entries that are not
// image data URIs are dropped without failing the batch.
func (s *LocationService) AddPhotos(ctx context.Context, userID, locationID uuid.UUID, photos []string) (*LocationInfo, error) {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	added := l.AddPhotos(photos)
	if added < len(photos) {
		s.logger.Warn("Dropped non-image photo entries",
			zap.String("location_id", locationID.String()),
			zap.Int("dropped", len(photos)-added))
	}

	if added > 0 {
		if err := s.locationRepo.Update(ctx, l); err != nil {
			s.logger.Error("Failed to save photos", zap.Error(err))
			return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save photos")
		}
	}

	return toLocationInfo(l), nil
}

// AddTask appends a checklist item to a location
func (s *LocationService) AddTask(ctx context.Context, userID, locationID uuid.UUID, input AddTaskInput) (*LocationInfo, error) {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	if _, err := l.AddTask(input.Text); err != nil {
		return nil, err
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to save task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save task")
	}

	return toLocationInfo(l), nil
}

// UpdateTask patches one checklist item
func (s *LocationService) UpdateTask(ctx context.Context, userID, locationID, taskID uuid.UUID, input UpdateTaskInput) (*LocationInfo, error) {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}

	if _, err := l.UpdateTask(taskID, input.Text, input.Done); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("TASK_NOT_FOUND", "Task not found")
		}
		return nil, err
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to save task", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save task")
	}

	return toLocationInfo(l), nil
}

// RemoveTask deletes one checklist item
func (s *LocationService) RemoveTask(ctx context.Context, userID, locationID, taskID uuid.UUID) error {
	l, err := s.loadLocation(ctx, userID, locationID)
	if err != nil {
		return err
	}

	if err := l.RemoveTask(taskID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("TASK_NOT_FOUND", "Task not found")
		}
		return err
	}

	if err := s.locationRepo.Update(ctx, l); err != nil {
		s.logger.Error("Failed to remove task", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove task")
	}

	return nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/geo"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormLocationRepository implements geo.LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Create creates a new location
func (r *GormLocationRepository) Create(ctx context.Context, l *geo.MapLocation) error {
	model, err := models.MapLocationModelFromDomain(l)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing location
func (r *GormLocationRepository) Update(ctx context.Context, l *geo.MapLocation) error {
	model, err := models.MapLocationModelFromDomain(l)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&models.MapLocationModel{}).
		Where("id = ? AND user_id = ?", l.ID, l.UserID).
		Select("Title", "Lat", "Lng", "Note", "PhotosJSON", "TasksJSON", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an owner's location by ID
func (r *GormLocationRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.MapLocationModel{}, "id = ? AND user_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds an owner's location by ID
func (r *GormLocationRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*geo.MapLocation, error) {
	var model models.MapLocationModel
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAllByOwner returns an owner's locations, newest first
func (r *GormLocationRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*geo.MapLocation, error) {
	var locationModels []models.MapLocationModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&locationModels).Error; err != nil {
		return nil, err
	}

	locations := make([]*geo.MapLocation, 0, len(locationModels))
	for i := range locationModels {
		l, err := locationModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		locations = append(locations, l)
	}
	return locations, nil
}

package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/trip"
	"github.com/wanderplan/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormTripRepository implements trip.TripRepository using GORM
type GormTripRepository struct {
	db *gorm.DB
}

// NewGormTripRepository creates a new GormTripRepository
func NewGormTripRepository(db *gorm.DB) *GormTripRepository {
	return &GormTripRepository{db: db}
}

// Create creates a new trip
func (r *GormTripRepository) Create(ctx context.Context, t *trip.Trip) error {
	model, err := models.TripModelFromDomain(t)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing trip
func (r *GormTripRepository) Update(ctx context.Context, t *trip.Trip) error {
	model, err := models.TripModelFromDomain(t)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&models.TripModel{}).
		Where("id = ? AND user_id = ?", t.ID, t.UserID).
		Select("Destination", "StartDate", "EndDate", "DaysJSON", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an owner's trip and cascades that owner's budgets for it
// in a single transaction.
func (r *GormTripRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.TripModel{}, "id = ? AND user_id = ?", id, ownerID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Delete(&models.BudgetModel{}, "trip_id = ? AND user_id = ?", id, ownerID).Error
	})
}

// FindByID finds an owner's trip by ID
func (r *GormTripRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*trip.Trip, error) {
	var model models.TripModel
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

// FindByIDPublic finds a trip by ID without an ownership filter
func (r *GormTripRepository) FindByIDPublic(ctx context.Context, id uuid.UUID) (*trip.Trip, error) {
	var model models.TripModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain()
}

// FindAllByOwner returns all trips for an owner, newest first
func (r *GormTripRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*trip.Trip, error) {
	var tripModels []models.TripModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&tripModels).Error; err != nil {
		return nil, err
	}

	trips := make([]*trip.Trip, 0, len(tripModels))
	for i := range tripModels {
		t, err := tripModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

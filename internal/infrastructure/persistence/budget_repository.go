package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/budget"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormBudgetRepository implements budget.BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// Create creates a new budget
func (r *GormBudgetRepository) Create(ctx context.Context, b *budget.Budget) error {
	model, err := models.BudgetModelFromDomain(b)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists changes to an existing budget, including its expenses
func (r *GormBudgetRepository) Update(ctx context.Context, b *budget.Budget) error {
	model, err := models.BudgetModelFromDomain(b)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&models.BudgetModel{}).
		Where("id = ? AND user_id = ?", b.ID, b.UserID).
		Select("TripID", "Name", "Currency", "LimitAmount", "StartDate", "EndDate", "ExpensesJSON", "UpdatedAt").
		Updates(model)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete deletes an owner's budget by ID
func (r *GormBudgetRepository) Delete(ctx context.Context, ownerID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.BudgetModel{}, "id = ? AND user_id = ?", id, ownerID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteByTripID deletes all of an owner's budgets for a trip
func (r *GormBudgetRepository) DeleteByTripID(ctx context.Context, ownerID, tripID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.BudgetModel{}, "trip_id = ? AND user_id = ?", tripID, ownerID).Error
}

// FindByID finds an owner's budget by ID
func (r *GormBudgetRepository) FindByID(ctx context.Context, ownerID, id uuid.UUID) (*budget.Budget, error) {
	var model models.BudgetModel
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

// FindAllByOwner returns an owner's budgets, newest first
func (r *GormBudgetRepository) FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*budget.Budget, error) {
	var budgetModels []models.BudgetModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&budgetModels).Error; err != nil {
		return nil, err
	}
	return budgetsToDomain(budgetModels)
}

// FindByTripID returns an owner's budgets for a trip, newest first
func (r *GormBudgetRepository) FindByTripID(ctx context.Context, ownerID, tripID uuid.UUID) ([]*budget.Budget, error) {
	var budgetModels []models.BudgetModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND trip_id = ?", ownerID, tripID).
		Order("created_at DESC").
		Find(&budgetModels).Error; err != nil {
		return nil, err
	}
	return budgetsToDomain(budgetModels)
}

// ExistsForTrip reports whether the owner already has a budget for the trip
func (r *GormBudgetRepository) ExistsForTrip(ctx context.Context, ownerID, tripID uuid.UUID, excludeID *uuid.UUID) (bool, error) {
	query := r.db.WithContext(ctx).
		Model(&models.BudgetModel{}).
		Where("user_id = ? AND trip_id = ?", ownerID, tripID)
	if excludeID != nil {
		query = query.Where("id <> ?", *excludeID)
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func budgetsToDomain(budgetModels []models.BudgetModel) ([]*budget.Budget, error) {
	budgets := make([]*budget.Budget, 0, len(budgetModels))
	for i := range budgetModels {
		b, err := budgetModels[i].ToDomain()
		if err != nil {
			return nil, err
		}
		budgets = append(budgets, b)
	}
	return budgets, nil
}

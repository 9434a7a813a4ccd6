package budget

import (
	"context"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/budget"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/domain/trip"
	"go.uber.org/zap"
)

// BudgetService handles budget CRUD and embedded expense mutations. It
// enforces the one-budget-per-trip rule: trip ownership is always verified
// before the duplicate check, so a caller probing with someone else's trip
// ID learns nothing beyond "not found".
type BudgetService struct {
	budgetRepo budget.BudgetRepository
	tripRepo   trip.TripRepository
	logger     *zap.Logger
}

// NewBudgetService creates a new budget service
func NewBudgetService(budgetRepo budget.BudgetRepository, tripRepo trip.TripRepository, logger *zap.Logger) *BudgetService {
	return &BudgetService{
		budgetRepo: budgetRepo,
		tripRepo:   tripRepo,
		logger:     logger,
	}
}

// loadBudget fetches an owner's budget, mapping a miss to the budget
// domain error and anything else to an internal failure.
func (s *BudgetService) loadBudget(ctx context.Context, userID, budgetID uuid.UUID) (*budget.Budget, error) {
	b, err := s.budgetRepo.FindByID(ctx, userID, budgetID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
		}
		s.logger.Error("Failed to load budget", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load budget")
	}
	return b, nil
}

// checkTripBinding verifies the trip exists and belongs to the user, then
// that no other budget of theirs already claims it. Order matters.
func (s *BudgetService) checkTripBinding(ctx context.Context, userID, tripID uuid.UUID, excludeBudgetID *uuid.UUID) error {
	if _, err := s.tripRepo.FindByID(ctx, userID, tripID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("TRIP_NOT_FOUND", "Trip not found or does not belong to you")
		}
		s.logger.Error("Failed to verify trip ownership", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to verify trip ownership")
	}

	exists, err := s.budgetRepo.ExistsForTrip(ctx, userID, tripID, excludeBudgetID)
	if err != nil {
		s.logger.Error("Failed to check for existing budget", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to check for existing budget")
	}
	if exists {
		return shared.NewDomainError("BUDGET_EXISTS", "A budget already exists for this trip")
	}

	return nil
}

// CreateBudget creates a budget bound to one of the user's trips
func (s *BudgetService) CreateBudget(ctx context.Context, userID uuid.UUID, input CreateBudgetInput) (*BudgetInfo, error) {
	if err := s.checkTripBinding(ctx, userID, input.TripID, nil); err != nil {
		return nil, err
	}

	b, err := budget.NewBudget(userID, input.TripID, input.Name, input.Currency, input.Limit)
	if err != nil {
		return nil, err
	}
	b.SetStartDate(input.StartDate)
	b.SetEndDate(input.EndDate)

	if err := s.budgetRepo.Create(ctx, b); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("BUDGET_EXISTS", "A budget already exists for this trip")
		}
		s.logger.Error("Failed to create budget", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create budget")
	}

	s.logger.Info("Budget created",
		zap.String("budget_id", b.ID.String()),
		zap.String("trip_id", input.TripID.String()),
		zap.String("user_id", userID.String()))

	return toBudgetInfo(b), nil
}

// GetBudget returns one of the user's budgets
func (s *BudgetService) GetBudget(ctx context.Context, userID, budgetID uuid.UUID) (*BudgetInfo, error) {
	b, err := s.loadBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}
	return toBudgetInfo(b), nil
}

// ListBudgets returns the user's budgets, newest first
func (s *BudgetService) ListBudgets(ctx context.Context, userID uuid.UUID) ([]*BudgetInfo, error) {
	budgets, err := s.budgetRepo.FindAllByOwner(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list budgets", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list budgets")
	}
	return toBudgetInfos(budgets), nil
}

// ListBudgetsByTrip returns the user's budgets for one trip
func (s *BudgetService) ListBudgetsByTrip(ctx context.Context, userID, tripID uuid.UUID) ([]*BudgetInfo, error) {
	budgets, err := s.budgetRepo.FindByTripID(ctx, userID, tripID)
	if err != nil {
		s.logger.Error("Failed to list budgets for trip", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to list budgets")
	}
	return toBudgetInfos(budgets), nil
}

// UpdateBudget applies a partial update. Re-pointing the budget at a
// different trip re-runs the ownership and duplicate checks, excluding the
// budget being updated.
func (s *BudgetService) UpdateBudget(ctx context.Context, userID, budgetID uuid.UUID, input UpdateBudgetInput) (*BudgetInfo, error) {
	b, err := s.loadBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if input.TripID != nil && *input.TripID != b.TripID {
		if err := s.checkTripBinding(ctx, userID, *input.TripID, &budgetID); err != nil {
			return nil, err
		}
		if err := b.SetTripID(*input.TripID); err != nil {
			return nil, err
		}
	}
	if input.Name != nil {
		if err := b.SetName(*input.Name); err != nil {
			return nil, err
		}
	}
	if input.Currency != nil {
		b.SetCurrency(*input.Currency)
	}
	if input.Limit != nil {
		if err := b.SetLimit(*input.Limit); err != nil {
			return nil, err
		}
	}
	if input.StartDate != nil {
		b.SetStartDate(*input.StartDate)
	}
	if input.EndDate != nil {
		b.SetEndDate(*input.EndDate)
	}

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("BUDGET_EXISTS", "A budget already exists for this trip")
		}
		s.logger.Error("Failed to update budget", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to update budget")
	}

	return toBudgetInfo(b), nil
}

// DeleteBudget deletes one of the user's budgets
func (s *BudgetService) DeleteBudget(ctx context.Context, userID, budgetID uuid.UUID) error {
	if err := s.budgetRepo.Delete(ctx, userID, budgetID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("BUDGET_NOT_FOUND", "Budget not found")
		}
		s.logger.Error("Failed to delete budget", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to delete budget")
	}
	return nil
}

// AddExpense appends an expense to a budget
func (s *BudgetService) AddExpense(ctx context.Context, userID, budgetID uuid.UUID, input AddExpenseInput) (*BudgetInfo, error) {
	b, err := s.loadBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if _, err := b.AddExpense(input.Amount, input.Currency, input.Category, input.Date, input.Note); err != nil {
		return nil, err
	}

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		s.logger.Error("Failed to save expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}

	return toBudgetInfo(b), nil
}

// UpdateExpense patches one expense inside a budget
func (s *BudgetService) UpdateExpense(ctx context.Context, userID, budgetID, expenseID uuid.UUID, input UpdateExpenseInput) (*BudgetInfo, error) {
	b, err := s.loadBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if _, err := b.UpdateExpense(expenseID, input.Amount, input.Currency, input.Category, input.Date, input.Note); err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return nil, err
	}

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		s.logger.Error("Failed to save expense", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to save expense")
	}

	return toBudgetInfo(b), nil
}

// RemoveExpense deletes one expense from a budget
func (s *BudgetService) RemoveExpense(ctx context.Context, userID, budgetID, expenseID uuid.UUID) error {
	b, err := s.loadBudget(ctx, userID, budgetID)
	if err != nil {
		return err
	}

	if err := b.RemoveExpense(expenseID); err != nil {
		if err == shared.ErrNotFound {
			return shared.NewDomainError("EXPENSE_NOT_FOUND", "Expense not found")
		}
		return err
	}

	if err := s.budgetRepo.Update(ctx, b); err != nil {
		s.logger.Error("Failed to remove expense", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to remove expense")
	}

	return nil
}

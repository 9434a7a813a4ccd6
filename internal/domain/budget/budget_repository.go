package budget

import (
	"context"

	"github.com/google/uuid"
)

// BudgetRepository defines the interface for budget persistence. Expenses
// are embedded in the budget row, so expense mutations go through Update.
type BudgetRepository interface {
	// Create creates a new budget
	Create(ctx context.Context, b *Budget) error

	// Update persists changes to an existing budget, including its expenses
	Update(ctx context.Context, b *Budget) error

	// Delete deletes an owner's budget by ID
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// DeleteByTripID deletes all of an owner's budgets for a trip.
	// Used by the trip delete cascade.
	DeleteByTripID(ctx context.Context, ownerID, tripID uuid.UUID) error

	// FindByID finds an owner's budget by ID
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Budget, error)

	// FindAllByOwner returns an owner's budgets, newest first
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Budget, error)

	// FindByTripID returns an owner's budgets for a trip, newest first
	FindByTripID(ctx context.Context, ownerID, tripID uuid.UUID) ([]*Budget, error)

	// ExistsForTrip reports whether the owner already has a budget for the
	// trip, excluding excludeID when it is non-nil (for tripId changes).
	ExistsForTrip(ctx context.Context, ownerID, tripID uuid.UUID, excludeID *uuid.UUID) (bool, error)
}

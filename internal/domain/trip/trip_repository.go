package trip

import (
	"context"

	"github.com/google/uuid"
)

// TripRepository defines the interface for trip persistence.
// All owner-scoped lookups return shared.ErrNotFound for trips that exist
// but belong to another user, so handlers never leak existence.
type TripRepository interface {
	// Create creates a new trip
	Create(ctx context.Context, t *Trip) error

	// Update persists changes to an existing trip
	Update(ctx context.Context, t *Trip) error

	// Delete deletes an owner's trip by ID and cascades the owner's
	// budgets referencing it
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByID finds an owner's trip by ID
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*Trip, error)

	// FindByIDPublic finds a trip by ID without an ownership filter.
	// Used by share links only.
	FindByIDPublic(ctx context.Context, id uuid.UUID) (*Trip, error)

	// FindAllByOwner returns all trips for an owner, newest first
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Trip, error)
}

package geo

import (
	"context"

	"github.com/google/uuid"
)

// LocationRepository defines the interface for saved-location persistence.
// Tasks and photos are embedded in the location row, so their mutations go
// through Update.
type LocationRepository interface {
	// Create creates a new location
	Create(ctx context.Context, l *MapLocation) error

	// Update persists changes to an existing location
	Update(ctx context.Context, l *MapLocation) error

	// Delete deletes an owner's location by ID
	Delete(ctx context.Context, ownerID, id uuid.UUID) error

	// FindByID finds an owner's location by ID
	FindByID(ctx context.Context, ownerID, id uuid.UUID) (*MapLocation, error)

	// FindAllByOwner returns an owner's locations, newest first
	FindAllByOwner(ctx context.Context, ownerID uuid.UUID) ([]*MapLocation, error)
}

package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
)

// LocationRepository defines the persistence contract for locations.
// Locations are reference data: written by seeding, read everywhere.
type LocationRepository interface {
	// Add persists a location.
	Add(ctx context.Context, aggregate location.Location) error

	// Get retrieves a location by its UN location code.
	// Returns errs.ObjectNotFoundError when no such location exists.
	Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)

	// GetAll retrieves every stored location.
	GetAll(ctx context.Context) ([]location.Location, error)
}

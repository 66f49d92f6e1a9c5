package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/voyage"
)

// VoyageRepository defines the persistence contract for voyages.
// Voyages are reference data: written by seeding, read by validation and
// routing.
type VoyageRepository interface {
	// Add persists a voyage with its schedule.
	Add(ctx context.Context, aggregate *voyage.Voyage) error

	// Get retrieves a voyage by its number.
	// Returns errs.ObjectNotFoundError when no such voyage exists.
	Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)

	// GetAll retrieves every stored voyage.
	GetAll(ctx context.Context) ([]*voyage.Voyage, error)
}

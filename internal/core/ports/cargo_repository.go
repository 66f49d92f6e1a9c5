// Package ports defines the interfaces between the application core and
// the outside world: repositories, the routing collaborator and the
// notification publisher. These contracts enable dependency inversion and
// testability.
package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
)

// CargoRepository defines the persistence contract for cargo aggregates.
// Provides methods for storing, retrieving, and querying cargos with their
// route specification, itinerary and cached delivery snapshot.
type CargoRepository interface {
	// Add persists a newly booked cargo aggregate to storage.
	// The cargo must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *cargo.Cargo) error

	// Update persists changes to an existing cargo aggregate, including a
	// replaced itinerary or a re-derived delivery snapshot.
	Update(ctx context.Context, aggregate *cargo.Cargo) error

	// Get retrieves a cargo aggregate by its tracking id.
	// Returns errs.ObjectNotFoundError when no such cargo exists.
	Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error)

	// Exists reports whether a cargo with the tracking id is stored,
	// without materializing the aggregate. Used by handling report
	// validation where only existence matters.
	Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
}

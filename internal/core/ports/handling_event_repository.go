package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
)

// HandlingEventRepository defines the persistence contract for handling
// events. The store is append only: events are added and read, never
// updated or removed, so a history snapshot once observed never shrinks.
type HandlingEventRepository interface {
	// Add persists a new handling event.
	Add(ctx context.Context, event handling.HandlingEvent) error

	// GetHistory retrieves the full handling history of one cargo in
	// registration order. An unknown tracking id yields an empty history,
	// not an error.
	GetHistory(ctx context.Context, trackingID kernel.TrackingID) (handling.HandlingHistory, error)
}

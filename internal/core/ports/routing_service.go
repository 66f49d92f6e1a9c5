package ports

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// RoutingService proposes candidate itineraries for a route specification.
// Optimal path computation happens in an external collaborator; the
// adapter behind this port translates to and from its wire format and
// filters out candidates that do not satisfy the specification.
type RoutingService interface {
	// FetchRoutesForSpecification returns zero or more itineraries
	// satisfying the specification. An empty result is not an error: it
	// means no route could be found.
	FetchRoutesForSpecification(
		ctx context.Context,
		routeSpec cargo.RouteSpecification,
	) ([]*cargo.Itinerary, error)
}

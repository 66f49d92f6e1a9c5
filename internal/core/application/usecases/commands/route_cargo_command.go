package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRouteCargoCommandIsNotConstructed = errors.New(
		"RouteCargoCommand must be created via NewRouteCargoCommand constructor",
	)
)

// RouteCargoCommand represents a request to assign an itinerary to a
// booked cargo. Candidate itineraries come from the routing service; the
// handler assigns the first candidate that satisfies the cargo's route
// specification.
type RouteCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewRouteCargoCommand creates a command to route a booked cargo.
func NewRouteCargoCommand(trackingID kernel.TrackingID) (RouteCargoCommand, error) {
	command := RouteCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingID(trackingID); err != nil {
		return RouteCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RouteCargoCommand) Validate() error {
	return c.guard.Validate(ErrRouteCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo to route.
func (c RouteCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *RouteCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

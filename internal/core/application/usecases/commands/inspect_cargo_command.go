package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrInspectCargoCommandIsNotConstructed = errors.New(
		"InspectCargoCommand must be created via NewInspectCargoCommand constructor",
	)
)

// InspectCargoCommand represents a request to re-derive a cargo's delivery
// snapshot from its current handling history and emit the policy
// notifications the new snapshot triggers.
type InspectCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewInspectCargoCommand creates a command to inspect a cargo.
func NewInspectCargoCommand(trackingID kernel.TrackingID) (InspectCargoCommand, error) {
	command := InspectCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := command.setTrackingID(trackingID); err != nil {
		return InspectCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c InspectCargoCommand) Validate() error {
	return c.guard.Validate(ErrInspectCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo to inspect.
func (c InspectCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

func (c *InspectCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

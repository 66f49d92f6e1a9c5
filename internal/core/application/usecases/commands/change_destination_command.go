package commands

import (
	"errors"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrChangeDestinationCommandIsNotConstructed = errors.New(
		"ChangeDestinationCommand must be created via NewChangeDestinationCommand constructor",
	)
)

// ChangeDestinationCommand represents a request to send a booked cargo to
// a new destination. The origin and arrival deadline stay as booked; only
// the destination of the route specification changes.
type ChangeDestinationCommand struct { //nolint:recvcheck //using for validation
	trackingID  kernel.TrackingID
	destination kernel.UnLocode

	guard guard.ConstructorGuard
}

// NewChangeDestinationCommand creates a command to change a cargo's destination.
func NewChangeDestinationCommand(
	trackingID kernel.TrackingID,
	destination kernel.UnLocode,
) (ChangeDestinationCommand, error) {
	command := ChangeDestinationCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(trackingID),
		command.setDestination(destination),
	); err != nil {
		return ChangeDestinationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeDestinationCommand) Validate() error {
	return c.guard.Validate(ErrChangeDestinationCommandIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo to re-destine.
func (c ChangeDestinationCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Destination returns the UN location code of the new destination.
func (c ChangeDestinationCommand) Destination() kernel.UnLocode {
	return c.destination
}

func (c *ChangeDestinationCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *ChangeDestinationCommand) setDestination(destination kernel.UnLocode) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	c.destination = destination
	return nil
}

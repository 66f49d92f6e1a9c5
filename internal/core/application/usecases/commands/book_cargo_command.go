package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrBookCargoCommandIsNotConstructed = errors.New(
		"BookCargoCommand must be created via NewBookCargoCommand constructor",
	)
)

// BookCargoCommand represents a request to book a new cargo from an origin
// to a destination with an arrival deadline. The tracking id is assigned by
// the caller so it can be returned to the customer before the transaction
// completes.
//
// Example:
//
//	trackingID := kernel.NewTrackingID()
//	origin, _ := kernel.NewUnLocode("CNHKG")
//	destination, _ := kernel.NewUnLocode("SESTO")
//	cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, deadline)
//	if err != nil {
//	    return fmt.Errorf("invalid booking data: %w", err)
//	}
type BookCargoCommand struct { //nolint:recvcheck //using for validation
	trackingID      kernel.TrackingID
	origin          kernel.UnLocode
	destination     kernel.UnLocode
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewBookCargoCommand creates a command to book a new cargo.
// Validates the tracking id, both location codes and the deadline.
// Origin and destination must differ.
func NewBookCargoCommand(
	trackingID kernel.TrackingID,
	origin kernel.UnLocode,
	destination kernel.UnLocode,
	arrivalDeadline time.Time,
) (BookCargoCommand, error) {
	command := BookCargoCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTrackingID(trackingID),
		command.setRoute(origin, destination),
		command.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return BookCargoCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c BookCargoCommand) Validate() error {
	return c.guard.Validate(ErrBookCargoCommandIsNotConstructed)
}

// TrackingID returns the tracking id assigned to the new cargo.
func (c BookCargoCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// Origin returns the UN location code the cargo starts from.
func (c BookCargoCommand) Origin() kernel.UnLocode {
	return c.origin
}

// Destination returns the UN location code the cargo must reach.
func (c BookCargoCommand) Destination() kernel.UnLocode {
	return c.destination
}

// ArrivalDeadline returns the latest acceptable arrival time.
func (c BookCargoCommand) ArrivalDeadline() time.Time {
	return c.arrivalDeadline
}

func (c *BookCargoCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *BookCargoCommand) setRoute(origin, destination kernel.UnLocode) error {
	if err := errors.Join(origin.Validate(), destination.Validate()); err != nil {
		return err
	}
	if origin.IsEqual(destination) {
		return errs.NewValueIsInvalidError("origin and destination are equal")
	}
	c.origin = origin
	c.destination = destination
	return nil
}

func (c *BookCargoCommand) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	c.arrivalDeadline = arrivalDeadline
	return nil
}

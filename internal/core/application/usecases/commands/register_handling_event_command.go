package commands

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrRegisterHandlingEventCommandIsNotConstructed = errors.New(
		"RegisterHandlingEventCommand must be created via NewRegisterHandlingEventCommand constructor",
	)
)

// RegisterHandlingEventCommand represents a handling report that passed
// syntactic validation: well formed tracking id, location code, event type
// and times. Whether the referenced entities exist is checked later, by
// the handling event factory inside the handler.
type RegisterHandlingEventCommand struct { //nolint:recvcheck //using for validation
	registrationTime time.Time
	completionTime   time.Time
	trackingID       kernel.TrackingID
	voyageNumber     *voyage.Number
	unLocode         kernel.UnLocode
	eventType        handling.Type

	guard guard.ConstructorGuard
}

// NewRegisterHandlingEventCommand creates a command to register a handling
// event. The voyage number is optional; when present it must be well
// formed.
func NewRegisterHandlingEventCommand(
	registrationTime time.Time,
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *voyage.Number,
	unLocode kernel.UnLocode,
	eventType handling.Type,
) (RegisterHandlingEventCommand, error) {
	command := RegisterHandlingEventCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTimes(registrationTime, completionTime),
		command.setTrackingID(trackingID),
		command.setVoyageNumber(voyageNumber),
		command.setUnLocode(unLocode),
		command.setEventType(eventType),
	); err != nil {
		return RegisterHandlingEventCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterHandlingEventCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHandlingEventCommandIsNotConstructed)
}

// RegistrationTime returns when the system received the report.
func (c RegisterHandlingEventCommand) RegistrationTime() time.Time {
	return c.registrationTime
}

// CompletionTime returns when the handling physically happened.
func (c RegisterHandlingEventCommand) CompletionTime() time.Time {
	return c.completionTime
}

// TrackingID returns the tracking id the report refers to.
func (c RegisterHandlingEventCommand) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// VoyageNumber returns the reported voyage number, or nil when the report
// carried none.
func (c RegisterHandlingEventCommand) VoyageNumber() *voyage.Number {
	return c.voyageNumber
}

// UnLocode returns the reported location code.
func (c RegisterHandlingEventCommand) UnLocode() kernel.UnLocode {
	return c.unLocode
}

// EventType returns the reported event type.
func (c RegisterHandlingEventCommand) EventType() handling.Type {
	return c.eventType
}

func (c *RegisterHandlingEventCommand) setTimes(registrationTime, completionTime time.Time) error {
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	c.registrationTime = registrationTime
	c.completionTime = completionTime
	return nil
}

func (c *RegisterHandlingEventCommand) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *RegisterHandlingEventCommand) setVoyageNumber(voyageNumber *voyage.Number) error {
	if voyageNumber == nil {
		return nil
	}
	if err := voyageNumber.Validate(); err != nil {
		return err
	}
	c.voyageNumber = voyageNumber
	return nil
}

func (c *RegisterHandlingEventCommand) setUnLocode(unLocode kernel.UnLocode) error {
	if err := unLocode.Validate(); err != nil {
		return err
	}
	c.unLocode = unLocode
	return nil
}

func (c *RegisterHandlingEventCommand) setEventType(eventType handling.Type) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	c.eventType = eventType
	return nil
}

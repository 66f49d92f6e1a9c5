package handling

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrHandlingEventIsNotConstructed is returned when a HandlingEvent instance
	// was not created through the NewHandlingEvent factory method.
	ErrHandlingEventIsNotConstructed = errors.New("HandlingEvent must be created via NewHandlingEvent constructor")
)

// HandlingEvent is the immutable fact that something happened to a cargo:
// it was received, loaded onto or unloaded from a voyage, customs cleared,
// or claimed, at a location and point in time.
//
// HandlingEvent follows these invariants:
//   - Must reference a valid cargo tracking id and location
//   - Load and Unload events carry a voyage; Receive, Customs and Claim do not
//   - The completion time (when it physically happened) and registration
//     time (when the system learned of it) are both set and never change
//   - Can only be created through NewHandlingEvent
//
// Events are compared by business value: tracking id, type, location,
// voyage and completion time. The registration time is excluded, so two
// reports of the same physical fact are equal regardless of when each
// report arrived.
type HandlingEvent struct {
	trackingID       kernel.TrackingID
	eventType        Type
	location         location.Location
	voyage           *voyage.Voyage
	completionTime   time.Time
	registrationTime time.Time

	guard guard.ConstructorGuard
}

// NewHandlingEvent creates a validated HandlingEvent. This is the only way
// to create one, which makes the type/voyage contract a construction time
// guarantee: a Load or Unload without a voyage, or a Receive, Customs or
// Claim with one, never yields an event.
//
// Parameters:
//   - trackingID: the cargo the event belongs to
//   - eventType: what happened (Receive, Load, Unload, Customs, Claim)
//   - eventLocation: where it happened
//   - eventVoyage: the carrier voyage involved (nil unless the type requires one)
//   - completionTime: when it physically happened
//   - registrationTime: when the system learned of it
//
// Returns the event, or a validation error describing every violated rule.
func NewHandlingEvent(
	trackingID kernel.TrackingID,
	eventType Type,
	eventLocation location.Location,
	eventVoyage *voyage.Voyage,
	completionTime time.Time,
	registrationTime time.Time,
) (HandlingEvent, error) {
	event := HandlingEvent{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		event.setTrackingID(trackingID),
		event.setEventType(eventType),
		event.setLocation(eventLocation),
		event.setVoyage(eventType, eventVoyage),
		event.setCompletionTime(completionTime),
		event.setRegistrationTime(registrationTime),
	); err != nil {
		return HandlingEvent{}, err
	}

	return event, nil
}

// Validate ensures the HandlingEvent was constructed through NewHandlingEvent.
// The zero value is invalid and fails this check.
func (e HandlingEvent) Validate() error {
	return e.guard.Validate(ErrHandlingEventIsNotConstructed)
}

// TrackingID returns the tracking id of the cargo the event belongs to.
func (e HandlingEvent) TrackingID() kernel.TrackingID {
	return e.trackingID
}

// EventType returns what kind of handling the event records.
func (e HandlingEvent) EventType() Type {
	return e.eventType
}

// Location returns where the handling took place.
func (e HandlingEvent) Location() location.Location {
	return e.location
}

// Voyage returns the carrier voyage involved, or nil when the event type
// carries none.
func (e HandlingEvent) Voyage() *voyage.Voyage {
	return e.voyage
}

// CompletionTime returns when the handling physically happened.
func (e HandlingEvent) CompletionTime() time.Time {
	return e.completionTime
}

// RegistrationTime returns when the system learned of the handling.
func (e HandlingEvent) RegistrationTime() time.Time {
	return e.registrationTime
}

// IsEqual compares two events by business value: tracking id, type,
// location, voyage and completion time. Registration time is deliberately
// excluded from the comparison.
func (e HandlingEvent) IsEqual(other HandlingEvent) bool {
	return e.trackingID.IsEqual(other.trackingID) &&
		e.eventType == other.eventType &&
		e.location.IsEqual(other.location) &&
		e.voyage.IsEqual(other.voyage) &&
		e.completionTime.Equal(other.completionTime)
}

// String returns a short human readable description, useful in logs.
func (e HandlingEvent) String() string {
	return fmt.Sprintf("%s %s at %s on %s (completed %s)",
		e.eventType, e.trackingID, e.location, e.voyage, e.completionTime.Format(time.RFC3339))
}

func (e *HandlingEvent) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	e.trackingID = trackingID
	return nil
}

func (e *HandlingEvent) setEventType(eventType Type) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	e.eventType = eventType
	return nil
}

func (e *HandlingEvent) setLocation(eventLocation location.Location) error {
	if err := eventLocation.Validate(); err != nil {
		return err
	}
	e.location = eventLocation
	return nil
}

// setVoyage enforces the type/voyage contract: Load and Unload require a
// voyage, every other type must not carry one.
func (e *HandlingEvent) setVoyage(eventType Type, eventVoyage *voyage.Voyage) error {
	if eventType.RequiresVoyage() {
		if eventVoyage == nil {
			return errs.NewValueIsRequiredError(fmt.Sprintf("voyage is required for %s events", eventType))
		}
		if err := eventVoyage.Validate(); err != nil {
			return err
		}
		e.voyage = eventVoyage
		return nil
	}

	if eventVoyage != nil {
		return errs.NewValueIsInvalidErrorWithCause("voyage",
			fmt.Errorf("%s events must not carry a voyage", eventType))
	}
	return nil
}

func (e *HandlingEvent) setCompletionTime(completionTime time.Time) error {
	if completionTime.IsZero() {
		return errs.NewValueIsRequiredError("completionTime")
	}
	e.completionTime = completionTime
	return nil
}

func (e *HandlingEvent) setRegistrationTime(registrationTime time.Time) error {
	if registrationTime.IsZero() {
		return errs.NewValueIsRequiredError("registrationTime")
	}
	e.registrationTime = registrationTime
	return nil
}

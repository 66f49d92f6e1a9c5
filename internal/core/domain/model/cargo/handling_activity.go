package cargo

import (
	"errors"
	"fmt"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrHandlingActivityIsNotConstructed is returned when a HandlingActivity
	// instance was not created through the NewHandlingActivity factory method.
	ErrHandlingActivityIsNotConstructed = errors.New(
		"HandlingActivity must be created via NewHandlingActivity constructor",
	)
)

// HandlingActivity describes what should happen to a cargo next: an event
// type, a location, and for load and unload the voyage involved. It is a
// plain value compared by content.
type HandlingActivity struct {
	eventType handling.Type
	location  location.Location
	voyage    *voyage.Voyage

	guard guard.ConstructorGuard
}

// NewHandlingActivity creates a validated HandlingActivity. The voyage is
// subject to the same contract as handling events: required for Load and
// Unload, absent otherwise.
func NewHandlingActivity(
	eventType handling.Type,
	activityLocation location.Location,
	activityVoyage *voyage.Voyage,
) (HandlingActivity, error) {
	activity := HandlingActivity{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		activity.setEventType(eventType),
		activity.setLocation(activityLocation),
		activity.setVoyage(eventType, activityVoyage),
	); err != nil {
		return HandlingActivity{}, err
	}

	return activity, nil
}

// Validate ensures the HandlingActivity was constructed through NewHandlingActivity.
func (a HandlingActivity) Validate() error {
	return a.guard.Validate(ErrHandlingActivityIsNotConstructed)
}

// EventType returns the kind of handling the activity expects.
func (a HandlingActivity) EventType() handling.Type {
	return a.eventType
}

// Location returns where the handling is expected.
func (a HandlingActivity) Location() location.Location {
	return a.location
}

// Voyage returns the voyage involved, or nil when the type carries none.
func (a HandlingActivity) Voyage() *voyage.Voyage {
	return a.voyage
}

// IsEqual compares two activities by content: type, location and voyage.
func (a HandlingActivity) IsEqual(other HandlingActivity) bool {
	return a.eventType == other.eventType &&
		a.location.IsEqual(other.location) &&
		a.voyage.IsEqual(other.voyage)
}

// MatchesEvent reports whether a handling event fulfils the activity: same
// type, same location and same voyage.
func (a HandlingActivity) MatchesEvent(event handling.HandlingEvent) bool {
	return a.eventType == event.EventType() &&
		a.location.IsEqual(event.Location()) &&
		a.voyage.IsEqual(event.Voyage())
}

// String returns a short human readable description, useful in logs.
func (a HandlingActivity) String() string {
	if a.voyage != nil {
		return fmt.Sprintf("%s at %s on %s", a.eventType, a.location, a.voyage)
	}
	return fmt.Sprintf("%s at %s", a.eventType, a.location)
}

func (a *HandlingActivity) setEventType(eventType handling.Type) error {
	if err := eventType.Validate(); err != nil {
		return err
	}
	a.eventType = eventType
	return nil
}

func (a *HandlingActivity) setLocation(activityLocation location.Location) error {
	if err := activityLocation.Validate(); err != nil {
		return err
	}
	a.location = activityLocation
	return nil
}

func (a *HandlingActivity) setVoyage(eventType handling.Type, activityVoyage *voyage.Voyage) error {
	if eventType.RequiresVoyage() {
		if err := activityVoyage.Validate(); err != nil {
			return err
		}
		a.voyage = activityVoyage
		return nil
	}

	if activityVoyage != nil {
		return errs.NewValueIsInvalidErrorWithCause("voyage",
			fmt.Errorf("%s activities must not carry a voyage", eventType))
	}
	return nil
}

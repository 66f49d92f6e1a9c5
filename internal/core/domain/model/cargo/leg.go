package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrLegIsNotConstructed is returned when a Leg instance was not created
	// through the NewLeg factory method.
	ErrLegIsNotConstructed = errors.New("Leg must be created via NewLeg constructor")
)

// Leg is one scheduled segment of an itinerary: a voyage carrying the
// cargo from a load location to an unload location between two points in
// time. Legs are immutable values compared by content: two legs with the
// same voyage, locations and times are the same leg.
type Leg struct {
	voyage         *voyage.Voyage
	loadLocation   location.Location
	unloadLocation location.Location
	loadTime       time.Time
	unloadTime     time.Time

	guard guard.ConstructorGuard
}

// NewLeg creates a validated Leg. The voyage and both locations must be
// constructed values, both times must be set, and the unload time must not
// precede the load time.
func NewLeg(
	legVoyage *voyage.Voyage,
	loadLocation location.Location,
	unloadLocation location.Location,
	loadTime time.Time,
	unloadTime time.Time,
) (Leg, error) {
	leg := Leg{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		leg.setVoyage(legVoyage),
		leg.setLoadLocation(loadLocation),
		leg.setUnloadLocation(unloadLocation),
		leg.setTimes(loadTime, unloadTime),
	); err != nil {
		return Leg{}, err
	}

	return leg, nil
}

// Validate ensures the Leg was constructed through NewLeg.
// The zero value is invalid and fails this check.
func (l Leg) Validate() error {
	return l.guard.Validate(ErrLegIsNotConstructed)
}

// Voyage returns the carrier voyage performing the leg.
func (l Leg) Voyage() *voyage.Voyage {
	return l.voyage
}

// LoadLocation returns where the cargo is loaded for this leg.
func (l Leg) LoadLocation() location.Location {
	return l.loadLocation
}

// UnloadLocation returns where the cargo is unloaded after this leg.
func (l Leg) UnloadLocation() location.Location {
	return l.unloadLocation
}

// LoadTime returns the scheduled load time.
func (l Leg) LoadTime() time.Time {
	return l.loadTime
}

// UnloadTime returns the scheduled unload time.
func (l Leg) UnloadTime() time.Time {
	return l.unloadTime
}

// IsEqual compares two legs by content. Two legs are the same value when
// the voyage, both locations and both times all match.
func (l Leg) IsEqual(other Leg) bool {
	return l.voyage.IsEqual(other.voyage) &&
		l.loadLocation.IsEqual(other.loadLocation) &&
		l.unloadLocation.IsEqual(other.unloadLocation) &&
		l.loadTime.Equal(other.loadTime) &&
		l.unloadTime.Equal(other.unloadTime)
}

func (l *Leg) setVoyage(legVoyage *voyage.Voyage) error {
	if err := legVoyage.Validate(); err != nil {
		return err
	}
	l.voyage = legVoyage
	return nil
}

func (l *Leg) setLoadLocation(loadLocation location.Location) error {
	if err := loadLocation.Validate(); err != nil {
		return err
	}
	l.loadLocation = loadLocation
	return nil
}

func (l *Leg) setUnloadLocation(unloadLocation location.Location) error {
	if err := unloadLocation.Validate(); err != nil {
		return err
	}
	l.unloadLocation = unloadLocation
	return nil
}

func (l *Leg) setTimes(loadTime, unloadTime time.Time) error {
	if loadTime.IsZero() {
		return errs.NewValueIsRequiredError("loadTime")
	}
	if unloadTime.IsZero() {
		return errs.NewValueIsRequiredError("unloadTime")
	}
	if unloadTime.Before(loadTime) {
		return errs.NewValueIsInvalidError("unloadTime is before loadTime")
	}
	l.loadTime = loadTime
	l.unloadTime = unloadTime
	return nil
}

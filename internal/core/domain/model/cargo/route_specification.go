package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrRouteSpecificationIsNotConstructed is returned when a RouteSpecification
	// instance was not created through the NewRouteSpecification factory method.
	ErrRouteSpecificationIsNotConstructed = errors.New(
		"RouteSpecification must be created via NewRouteSpecification constructor",
	)
)

// RouteSpecification states where a cargo must travel: from an origin to a
// different destination, arriving no later than a deadline. It is an
// immutable value compared by content.
//
// A deadline in the past is accepted input. Whether a booking with an
// expired deadline makes business sense is a concern of the booking
// surface, not of the value object.
type RouteSpecification struct {
	origin          location.Location
	destination     location.Location
	arrivalDeadline time.Time

	guard guard.ConstructorGuard
}

// NewRouteSpecification creates a validated RouteSpecification.
// Origin and destination must be constructed locations and must differ,
// and the arrival deadline must be set.
func NewRouteSpecification(
	origin location.Location,
	destination location.Location,
	arrivalDeadline time.Time,
) (RouteSpecification, error) {
	spec := RouteSpecification{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		spec.setOrigin(origin),
		spec.setDestination(origin, destination),
		spec.setArrivalDeadline(arrivalDeadline),
	); err != nil {
		return RouteSpecification{}, err
	}

	return spec, nil
}

// Validate ensures the RouteSpecification was constructed through
// NewRouteSpecification. The zero value is invalid and fails this check.
func (s RouteSpecification) Validate() error {
	return s.guard.Validate(ErrRouteSpecificationIsNotConstructed)
}

// Origin returns where the cargo starts its journey.
func (s RouteSpecification) Origin() location.Location {
	return s.origin
}

// Destination returns where the cargo must end up.
func (s RouteSpecification) Destination() location.Location {
	return s.destination
}

// ArrivalDeadline returns the latest acceptable arrival time.
func (s RouteSpecification) ArrivalDeadline() time.Time {
	return s.arrivalDeadline
}

// IsEqual compares two specifications by content.
func (s RouteSpecification) IsEqual(other RouteSpecification) bool {
	return s.origin.IsEqual(other.origin) &&
		s.destination.IsEqual(other.destination) &&
		s.arrivalDeadline.Equal(other.arrivalDeadline)
}

// IsSatisfiedBy reports whether an itinerary fulfils the specification:
// the itinerary is assigned and non empty, its first leg loads at the
// origin, its last leg unloads at the destination, and the final unload
// is not later than the arrival deadline.
//
// Only the first and last legs are inspected. Internal connectivity is a
// construction concern of the routing collaborator, not a satisfaction
// concern. The check never fails; any mismatch yields false.
func (s RouteSpecification) IsSatisfiedBy(itinerary *Itinerary) bool {
	if itinerary == nil || itinerary.Validate() != nil {
		return false
	}

	firstLeg := itinerary.legs[0]
	lastLeg := itinerary.legs[len(itinerary.legs)-1]

	return firstLeg.LoadLocation().IsEqual(s.origin) &&
		lastLeg.UnloadLocation().IsEqual(s.destination) &&
		!lastLeg.UnloadTime().After(s.arrivalDeadline)
}

func (s *RouteSpecification) setOrigin(origin location.Location) error {
	if err := origin.Validate(); err != nil {
		return err
	}
	s.origin = origin
	return nil
}

func (s *RouteSpecification) setDestination(origin, destination location.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	if destination.IsEqual(origin) {
		return errs.NewValueIsInvalidErrorWithCause("destination",
			fmt.Errorf("origin and destination are both %s", destination))
	}
	s.destination = destination
	return nil
}

func (s *RouteSpecification) setArrivalDeadline(arrivalDeadline time.Time) error {
	if arrivalDeadline.IsZero() {
		return errs.NewValueIsRequiredError("arrivalDeadline")
	}
	s.arrivalDeadline = arrivalDeadline
	return nil
}

package cargo

import (
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was not
	// produced by DeriveDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New("Delivery must be produced via DeriveDelivery or RestoreDelivery")

	// ErrUnrecognizedEventType indicates a handling history whose most recent
	// event carries a type outside the known set. This is a programming
	// invariant violation, not a user error: event construction makes it
	// unreachable for histories built from real events.
	ErrUnrecognizedEventType = errors.New("unrecognized handling event type in history")
)

// Delivery is the derived snapshot of a cargo's current state: where it
// is, whether it is on track, and what should happen to it next.
//
// A Delivery is never patched in place. It is recomputed wholesale by
// DeriveDelivery every time the handling history or the route changes, and
// cached on the cargo purely for read efficiency. Given the same route
// specification, itinerary and history snapshot, derivation always
// produces the same value.
type Delivery struct {
	transportStatus      TransportStatus
	routingStatus        RoutingStatus
	lastKnownLocation    *location.Location
	currentVoyage        *voyage.Voyage
	misdirected          bool
	eta                  *time.Time
	nextExpectedActivity *HandlingActivity
	calculatedAt         time.Time

	guard guard.ConstructorGuard
}

// DeriveDelivery recomputes the delivery snapshot for a cargo from
// scratch. It is a pure function over its arguments: no hidden state, no
// clock access, no I/O.
//
// The derivation, in order:
//  1. The routing status is NotRouted without an itinerary, Routed when the
//     itinerary satisfies the route specification, Misrouted otherwise.
//  2. With an empty history the cargo is NotReceived, located nowhere, on
//     no voyage and not misdirected.
//  3. Otherwise the most recently completed event fixes the transport
//     status (Load puts the cargo onboard its voyage, Claim claims it,
//     everything else leaves it in port), the last known location, and the
//     current voyage (only a Load leaves the cargo on one).
//  4. The cargo is misdirected when an itinerary is assigned and the most
//     recent event does not fit it. An unrouted cargo is never misdirected.
//  5. The eta is the itinerary's final arrival time, available only while
//     the cargo is Routed and not yet Claimed.
//  6. The next expected activity is suppressed once the cargo is Claimed
//     or whenever it is not Routed; otherwise it follows from the most
//     recent event's position on the itinerary. Misdirection alone does
//     not suppress it: an off itinerary event simply matches no leg and
//     yields no expectation.
//
// The only error is ErrUnrecognizedEventType for a history whose most
// recent event has an impossible type. For any validly typed history the
// derivation always produces a usable snapshot; absent facts come back as
// nil fields, never as failures.
func DeriveDelivery(
	routeSpec RouteSpecification,
	itinerary *Itinerary,
	history handling.HandlingHistory,
	calculatedAt time.Time,
) (Delivery, error) {
	delivery := Delivery{
		calculatedAt: calculatedAt,
		guard:        guard.NewConstructorGuard(),
	}

	routed := itinerary.Validate() == nil
	switch {
	case !routed:
		delivery.routingStatus = NotRouted
	case routeSpec.IsSatisfiedBy(itinerary):
		delivery.routingStatus = Routed
	default:
		delivery.routingStatus = Misrouted
	}

	lastEvent, hasEvents := history.MostRecentlyCompletedEvent()
	if !hasEvents {
		delivery.transportStatus = NotReceived
	} else {
		transportStatus, err := transportStatusIn(lastEvent)
		if err != nil {
			return Delivery{}, err
		}
		delivery.transportStatus = transportStatus

		lastKnown := lastEvent.Location()
		delivery.lastKnownLocation = &lastKnown
		if lastEvent.EventType() == handling.Load {
			delivery.currentVoyage = lastEvent.Voyage()
		}
		delivery.misdirected = routed && !itinerary.IsExpected(lastEvent)
	}

	if delivery.routingStatus == Routed && delivery.transportStatus != Claimed {
		eta := itinerary.FinalArrivalTime()
		delivery.eta = &eta

		var lastEventRef *handling.HandlingEvent
		if hasEvents {
			lastEventRef = &lastEvent
		}
		if activity, ok := itinerary.NextExpectedActivity(lastEventRef); ok {
			delivery.nextExpectedActivity = &activity
		}
	}

	return delivery, nil
}

// transportStatusIn maps the most recent event's type to a transport status.
func transportStatusIn(event handling.HandlingEvent) (TransportStatus, error) {
	switch event.EventType() {
	case handling.Load:
		return OnboardCarrier, nil
	case handling.Claim:
		return Claimed, nil
	case handling.Receive, handling.Unload, handling.Customs:
		return InPort, nil
	default:
		return TransportUnknown, fmt.Errorf("%w: %d", ErrUnrecognizedEventType, event.EventType())
	}
}

// RestoreDelivery reconstructs a delivery snapshot from persistence.
// It revalidates every component so a corrupted row cannot produce a
// snapshot that derivation could not have.
func RestoreDelivery(
	transportStatus TransportStatus,
	routingStatus RoutingStatus,
	lastKnownLocation *location.Location,
	currentVoyage *voyage.Voyage,
	misdirected bool,
	eta *time.Time,
	nextExpectedActivity *HandlingActivity,
	calculatedAt time.Time,
) (Delivery, error) {
	delivery := Delivery{
		misdirected: misdirected,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		delivery.setTransportStatus(transportStatus),
		delivery.setRoutingStatus(routingStatus),
		delivery.setLastKnownLocation(lastKnownLocation),
		delivery.setCurrentVoyage(currentVoyage),
		delivery.setEta(eta),
		delivery.setNextExpectedActivity(nextExpectedActivity),
		delivery.setCalculatedAt(calculatedAt),
	); err != nil {
		return Delivery{}, err
	}

	return delivery, nil
}

// Validate ensures the Delivery came from DeriveDelivery or RestoreDelivery.
// The zero value is invalid and fails this check.
func (d Delivery) Validate() error {
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

// TransportStatus returns where the cargo physically is in its journey.
func (d Delivery) TransportStatus() TransportStatus {
	return d.transportStatus
}

// RoutingStatus returns how the itinerary relates to the route specification.
func (d Delivery) RoutingStatus() RoutingStatus {
	return d.routingStatus
}

// LastKnownLocation returns where the cargo was last handled, or nil
// before any handling.
func (d Delivery) LastKnownLocation() *location.Location {
	return d.lastKnownLocation
}

// CurrentVoyage returns the voyage the cargo is on board, or nil whenever
// it is ashore.
func (d Delivery) CurrentVoyage() *voyage.Voyage {
	return d.currentVoyage
}

// IsMisdirected reports whether the most recent handling did not fit the
// assigned itinerary.
func (d Delivery) IsMisdirected() bool {
	return d.misdirected
}

// Eta returns the estimated arrival time, or nil when the cargo is not
// routed or already claimed.
func (d Delivery) Eta() *time.Time {
	return d.eta
}

// NextExpectedActivity returns what should happen to the cargo next, or
// nil when there is no further expectation.
func (d Delivery) NextExpectedActivity() *HandlingActivity {
	return d.nextExpectedActivity
}

// CalculatedAt returns when the snapshot was derived.
func (d Delivery) CalculatedAt() time.Time {
	return d.calculatedAt
}

// IsEqual compares two snapshots by derived content, ignoring the
// calculation timestamp. Two derivations over the same inputs are equal
// even when run at different times.
func (d Delivery) IsEqual(other Delivery) bool {
	return d.transportStatus == other.transportStatus &&
		d.routingStatus == other.routingStatus &&
		d.misdirected == other.misdirected &&
		optionalLocationsEqual(d.lastKnownLocation, other.lastKnownLocation) &&
		d.currentVoyage.IsEqual(other.currentVoyage) &&
		optionalTimesEqual(d.eta, other.eta) &&
		optionalActivitiesEqual(d.nextExpectedActivity, other.nextExpectedActivity)
}

func optionalLocationsEqual(a, b *location.Location) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func optionalTimesEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(*b)
}

func optionalActivitiesEqual(a, b *HandlingActivity) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func (d *Delivery) setTransportStatus(transportStatus TransportStatus) error {
	if err := transportStatus.Validate(); err != nil {
		return err
	}
	d.transportStatus = transportStatus
	return nil
}

func (d *Delivery) setRoutingStatus(routingStatus RoutingStatus) error {
	if err := routingStatus.Validate(); err != nil {
		return err
	}
	d.routingStatus = routingStatus
	return nil
}

func (d *Delivery) setLastKnownLocation(lastKnownLocation *location.Location) error {
	if lastKnownLocation == nil {
		return nil
	}
	if err := lastKnownLocation.Validate(); err != nil {
		return err
	}
	d.lastKnownLocation = lastKnownLocation
	return nil
}

func (d *Delivery) setCurrentVoyage(currentVoyage *voyage.Voyage) error {
	if currentVoyage == nil {
		return nil
	}
	if err := currentVoyage.Validate(); err != nil {
		return err
	}
	d.currentVoyage = currentVoyage
	return nil
}

func (d *Delivery) setEta(eta *time.Time) error {
	if eta != nil && eta.IsZero() {
		return errs.NewValueIsInvalidError("eta")
	}
	d.eta = eta
	return nil
}

func (d *Delivery) setNextExpectedActivity(nextExpectedActivity *HandlingActivity) error {
	if nextExpectedActivity == nil {
		return nil
	}
	if err := nextExpectedActivity.Validate(); err != nil {
		return err
	}
	d.nextExpectedActivity = nextExpectedActivity
	return nil
}

func (d *Delivery) setCalculatedAt(calculatedAt time.Time) error {
	if calculatedAt.IsZero() {
		return errs.NewValueIsRequiredError("calculatedAt")
	}
	d.calculatedAt = calculatedAt
	return nil
}

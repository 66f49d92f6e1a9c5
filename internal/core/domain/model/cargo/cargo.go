package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrCargoIsNotConstructed is returned when a Cargo instance was not
	// created through NewCargo or RestoreCargo.
	ErrCargoIsNotConstructed = errors.New("Cargo must be created via NewCargo or RestoreCargo constructor")
)

// Cargo is the aggregate root of the tracking domain. Identity is the
// tracking id, assigned once at booking and never changed.
//
// Cargo owns three things:
//   - the RouteSpecification saying where it must go
//   - the Itinerary saying how it will get there, assigned after booking
//     and replaced wholesale on reroute
//   - the cached Delivery snapshot saying where it currently is
//
// The snapshot is only a cache. After any change to the route, the
// itinerary or the handling history, callers re-derive it through
// DeriveDeliveryProgress before persisting the aggregate.
type Cargo struct {
	trackingID kernel.TrackingID
	routeSpec  RouteSpecification
	itinerary  *Itinerary
	delivery   Delivery

	guard guard.ConstructorGuard
}

// NewCargo books a new cargo for the given route. The cargo starts
// unrouted with an empty handling history, so the initial snapshot is
// NotReceived and NotRouted with no location, voyage, eta or expectation.
func NewCargo(trackingID kernel.TrackingID, routeSpec RouteSpecification) (*Cargo, error) {
	cargo := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpec),
	); err != nil {
		return nil, err
	}

	if err := cargo.DeriveDeliveryProgress(handling.HandlingHistory{}, time.Now().UTC()); err != nil {
		return nil, err
	}

	return cargo, nil
}

// RestoreCargo reconstructs a cargo aggregate from persistence.
// The itinerary may be nil for a cargo that was never routed.
func RestoreCargo(
	trackingID kernel.TrackingID,
	routeSpec RouteSpecification,
	itinerary *Itinerary,
	delivery Delivery,
) (*Cargo, error) {
	cargo := &Cargo{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cargo.setTrackingID(trackingID),
		cargo.setRouteSpecification(routeSpec),
		cargo.setItinerary(itinerary),
		cargo.setDelivery(delivery),
	); err != nil {
		return nil, err
	}

	return cargo, nil
}

// Validate ensures the Cargo was constructed through NewCargo or RestoreCargo.
func (c *Cargo) Validate() error {
	if c == nil {
		return ErrCargoIsNotConstructed
	}
	return c.guard.Validate(ErrCargoIsNotConstructed)
}

// TrackingID returns the cargo's identity.
func (c *Cargo) TrackingID() kernel.TrackingID {
	return c.trackingID
}

// RouteSpecification returns where the cargo must travel.
func (c *Cargo) RouteSpecification() RouteSpecification {
	return c.routeSpec
}

// Itinerary returns the assigned itinerary, or nil before routing.
func (c *Cargo) Itinerary() *Itinerary {
	return c.itinerary
}

// Delivery returns the cached delivery snapshot.
func (c *Cargo) Delivery() Delivery {
	return c.delivery
}

// IsEqual compares two cargos by tracking id.
func (c *Cargo) IsEqual(other *Cargo) bool {
	return other != nil && c.trackingID.IsEqual(other.trackingID)
}

// AssignToRoute assigns an itinerary to the cargo, replacing any previous
// one. The cached snapshot goes stale: callers re-derive it through
// DeriveDeliveryProgress before the aggregate leaves the transaction.
func (c *Cargo) AssignToRoute(itinerary *Itinerary) error {
	if err := itinerary.Validate(); err != nil {
		return err
	}
	c.itinerary = itinerary
	return nil
}

// SpecifyNewRoute replaces the route specification, typically on a
// destination change. The assigned itinerary is kept as is; if it no
// longer satisfies the new specification the next derivation turns the
// routing status to Misrouted. The cached snapshot goes stale, as with
// AssignToRoute.
func (c *Cargo) SpecifyNewRoute(routeSpec RouteSpecification) error {
	return c.setRouteSpecification(routeSpec)
}

// DeriveDeliveryProgress recomputes and caches the delivery snapshot from
// the cargo's route, its itinerary and the given handling history.
func (c *Cargo) DeriveDeliveryProgress(history handling.HandlingHistory, calculatedAt time.Time) error {
	delivery, err := DeriveDelivery(c.routeSpec, c.itinerary, history, calculatedAt)
	if err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}

func (c *Cargo) setTrackingID(trackingID kernel.TrackingID) error {
	if err := trackingID.Validate(); err != nil {
		return err
	}
	c.trackingID = trackingID
	return nil
}

func (c *Cargo) setRouteSpecification(routeSpec RouteSpecification) error {
	if err := routeSpec.Validate(); err != nil {
		return err
	}
	c.routeSpec = routeSpec
	return nil
}

// setItinerary accepts nil for a cargo that was never routed.
func (c *Cargo) setItinerary(itinerary *Itinerary) error {
	if itinerary == nil {
		return nil
	}
	if err := itinerary.Validate(); err != nil {
		return err
	}
	c.itinerary = itinerary
	return nil
}

func (c *Cargo) setDelivery(delivery Delivery) error {
	if err := delivery.Validate(); err != nil {
		return err
	}
	c.delivery = delivery
	return nil
}

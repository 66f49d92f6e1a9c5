package cargo

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrItineraryIsNotConstructed is returned when an Itinerary instance was
	// not created through the NewItinerary factory method.
	ErrItineraryIsNotConstructed = errors.New("Itinerary must be created via NewItinerary constructor")
)

// Itinerary is the ordered, non empty sequence of legs a cargo is assigned
// to travel. It is owned by exactly one cargo and replaced wholesale on
// reroute, never mutated in place.
//
// Adjacent legs are expected to connect (each leg unloads where the next
// loads), but that invariant is the responsibility of the routing
// collaborator that builds itineraries. The expectation queries below do
// not assume it holds: a disconnected or otherwise odd itinerary degrades
// to "no expectation" rather than failing.
type Itinerary struct {
	legs []Leg

	guard guard.ConstructorGuard
}

// NewItinerary creates an itinerary over the given legs. At least one leg
// is required and every leg must be a constructed value. The slice is
// copied.
func NewItinerary(legs []Leg) (*Itinerary, error) {
	if len(legs) == 0 {
		return nil, errs.NewValueIsRequiredError("legs")
	}
	for _, leg := range legs {
		if err := leg.Validate(); err != nil {
			return nil, err
		}
	}

	copied := make([]Leg, len(legs))
	copy(copied, legs)

	return &Itinerary{
		legs:  copied,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Itinerary was constructed through NewItinerary.
// A nil itinerary and the zero value both fail this check.
func (i *Itinerary) Validate() error {
	if i == nil {
		return ErrItineraryIsNotConstructed
	}
	return i.guard.Validate(ErrItineraryIsNotConstructed)
}

// Legs returns a copy of the legs in travel order.
func (i *Itinerary) Legs() []Leg {
	copied := make([]Leg, len(i.legs))
	copy(copied, i.legs)
	return copied
}

// IsEqual compares two itineraries leg by leg.
func (i *Itinerary) IsEqual(other *Itinerary) bool {
	if i == nil || other == nil {
		return i == other
	}
	if len(i.legs) != len(other.legs) {
		return false
	}
	for idx, leg := range i.legs {
		if !leg.IsEqual(other.legs[idx]) {
			return false
		}
	}
	return true
}

// InitialDepartureLocation returns the load location of the first leg.
func (i *Itinerary) InitialDepartureLocation() location.Location {
	return i.legs[0].LoadLocation()
}

// FinalArrivalLocation returns the unload location of the last leg.
func (i *Itinerary) FinalArrivalLocation() location.Location {
	return i.legs[len(i.legs)-1].UnloadLocation()
}

// FinalArrivalTime returns the unload time of the last leg.
func (i *Itinerary) FinalArrivalTime() time.Time {
	return i.legs[len(i.legs)-1].UnloadTime()
}

// IsExpected reports whether a handling event fits the itinerary.
//
// The check depends on the event type:
//   - Receive is expected at the first leg's load location
//   - Load is expected when some leg loads at the event's location on the
//     event's voyage
//   - Unload is expected when some leg unloads at the event's location on
//     the event's voyage
//   - Claim is expected at the last leg's unload location
//   - Customs never disrupts routing and is always expected
//
// A nil itinerary expects nothing, so every event is unexpected.
func (i *Itinerary) IsExpected(event handling.HandlingEvent) bool {
	if i.Validate() != nil {
		return false
	}

	switch event.EventType() {
	case handling.Receive:
		return i.legs[0].LoadLocation().IsEqual(event.Location())

	case handling.Load:
		for _, leg := range i.legs {
			if leg.LoadLocation().IsEqual(event.Location()) && leg.Voyage().IsEqual(event.Voyage()) {
				return true
			}
		}
		return false

	case handling.Unload:
		for _, leg := range i.legs {
			if leg.UnloadLocation().IsEqual(event.Location()) && leg.Voyage().IsEqual(event.Voyage()) {
				return true
			}
		}
		return false

	case handling.Claim:
		return i.FinalArrivalLocation().IsEqual(event.Location())

	case handling.Customs:
		return true

	default:
		return false
	}
}

// NextExpectedActivity computes what should happen to the cargo next,
// given the most recently completed handling event. A nil event means
// nothing has happened yet and the cargo is expected to be received at the
// itinerary's initial departure location.
//
// The second return value is false when the itinerary has no further
// expectation: after a claim or customs clearance, or when the given
// event does not place the cargo anywhere on the itinerary.
func (i *Itinerary) NextExpectedActivity(lastEvent *handling.HandlingEvent) (HandlingActivity, bool) {
	if i.Validate() != nil {
		return HandlingActivity{}, false
	}

	if lastEvent == nil {
		return i.activityOrNone(handling.Receive, i.legs[0].LoadLocation(), nil)
	}

	switch lastEvent.EventType() {
	case handling.Receive:
		firstLeg := i.legs[0]
		if !firstLeg.LoadLocation().IsEqual(lastEvent.Location()) {
			return HandlingActivity{}, false
		}
		return i.activityOrNone(handling.Load, firstLeg.LoadLocation(), firstLeg.Voyage())

	case handling.Load:
		for _, leg := range i.legs {
			if leg.LoadLocation().IsEqual(lastEvent.Location()) {
				return i.activityOrNone(handling.Unload, leg.UnloadLocation(), leg.Voyage())
			}
		}
		return HandlingActivity{}, false

	case handling.Unload:
		for idx, leg := range i.legs {
			if !leg.UnloadLocation().IsEqual(lastEvent.Location()) {
				continue
			}
			if idx == len(i.legs)-1 {
				return i.activityOrNone(handling.Claim, leg.UnloadLocation(), nil)
			}
			nextLeg := i.legs[idx+1]
			return i.activityOrNone(handling.Load, nextLeg.LoadLocation(), nextLeg.Voyage())
		}
		return HandlingActivity{}, false

	case handling.Claim, handling.Customs:
		return HandlingActivity{}, false

	default:
		return HandlingActivity{}, false
	}
}

// activityOrNone builds the activity value, degrading to "no expectation"
// if construction fails. Inputs come from validated legs, so a failure
// here would indicate a corrupted itinerary rather than bad user input.
func (i *Itinerary) activityOrNone(
	eventType handling.Type,
	activityLocation location.Location,
	activityVoyage *voyage.Voyage,
) (HandlingActivity, bool) {
	activity, err := NewHandlingActivity(eventType, activityLocation, activityVoyage)
	if err != nil {
		return HandlingActivity{}, false
	}
	return activity, true
}

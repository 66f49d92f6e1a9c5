package commands_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"

	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustUnLocode(t *testing.T, code string) kernel.UnLocode {
	t.Helper()
	unLocode, err := kernel.NewUnLocode(code)
	require.NoError(t, err)
	return unLocode
}

func mustLocation(t *testing.T, code, name string) location.Location {
	t.Helper()
	loc, err := location.NewLocation(mustUnLocode(t, code), name)
	require.NoError(t, err)
	return loc
}

func hongkong(t *testing.T) location.Location  { return mustLocation(t, "CNHKG", "Hongkong") }
func stockholm(t *testing.T) location.Location { return mustLocation(t, "SESTO", "Stockholm") }
func tokyo(t *testing.T) location.Location     { return mustLocation(t, "JNTKO", "Tokyo") }

func mustVoyage(
	t *testing.T,
	number string,
	from, to location.Location,
	departure, arrival time.Time,
) *voyage.Voyage {
	t.Helper()
	movement, err := voyage.NewCarrierMovement(from, to, departure, arrival)
	require.NoError(t, err)
	schedule, err := voyage.NewSchedule([]voyage.CarrierMovement{movement})
	require.NoError(t, err)
	v, err := voyage.NewVoyage(voyage.Number(number), schedule)
	require.NoError(t, err)
	return v
}

// directItinerary is a single leg Hongkong to Stockholm on voyage V100.
func directItinerary(t *testing.T) *cargo.Itinerary {
	t.Helper()
	v100 := mustVoyage(t, "V100", hongkong(t), stockholm(t), day(2009, 3, 2), day(2009, 3, 9))
	leg, err := cargo.NewLeg(v100, hongkong(t), stockholm(t), day(2009, 3, 2), day(2009, 3, 9))
	require.NoError(t, err)
	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	require.NoError(t, err)
	return itinerary
}

func hongkongStockholmSpec(t *testing.T) cargo.RouteSpecification {
	t.Helper()
	routeSpec, err := cargo.NewRouteSpecification(hongkong(t), stockholm(t), day(2009, 3, 18))
	require.NoError(t, err)
	return routeSpec
}

func unroutedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	booked, err := cargo.NewCargo(kernel.NewTrackingID(), hongkongStockholmSpec(t))
	require.NoError(t, err)
	return booked
}

func routedCargo(t *testing.T) *cargo.Cargo {
	t.Helper()
	routed := unroutedCargo(t)
	require.NoError(t, routed.AssignToRoute(directItinerary(t)))
	return routed
}

func mustEvent(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.Type,
	eventLocation location.Location,
	eventVoyage *voyage.Voyage,
	completion time.Time,
) handling.HandlingEvent {
	t.Helper()
	event, err := handling.NewHandlingEvent(
		trackingID, eventType, eventLocation, eventVoyage, completion, completion.Add(10*time.Minute),
	)
	require.NoError(t, err)
	return event
}

func mustHistory(t *testing.T, events ...handling.HandlingEvent) handling.HandlingHistory {
	t.Helper()
	history, err := handling.NewHandlingHistory(events)
	require.NoError(t, err)
	return history
}

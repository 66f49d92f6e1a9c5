package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/sampledata"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, year int, month time.Month, day int) time.Time {
	t.Helper()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func mustLeg(
	t *testing.T,
	legVoyage *voyage.Voyage,
	from, to location.Location,
	loadTime, unloadTime time.Time,
) cargo.Leg {
	t.Helper()
	leg, err := cargo.NewLeg(legVoyage, from, to, loadTime, unloadTime)
	require.NoError(t, err)
	return leg
}

// hongkongToStockholm is the itinerary assigned at booking:
// Hongkong -(V100)-> New York -(V200)-> Chicago -(V200)-> Stockholm.
func hongkongToStockholm(t *testing.T) *cargo.Itinerary {
	t.Helper()
	itinerary, err := cargo.NewItinerary([]cargo.Leg{
		mustLeg(t, sampledata.V100, sampledata.Hongkong, sampledata.NewYork,
			date(t, 2009, time.March, 3), date(t, 2009, time.March, 9)),
		mustLeg(t, sampledata.V200, sampledata.NewYork, sampledata.Chicago,
			date(t, 2009, time.March, 10), date(t, 2009, time.March, 14)),
		mustLeg(t, sampledata.V200, sampledata.Chicago, sampledata.Stockholm,
			date(t, 2009, time.March, 7), date(t, 2009, time.March, 11)),
	})
	require.NoError(t, err)
	return itinerary
}

// tokyoToStockholm is the repair itinerary after the cargo was misdirected
// to Tokyo: Tokyo -(V300)-> Hamburg -(V400)-> Stockholm.
func tokyoToStockholm(t *testing.T) *cargo.Itinerary {
	t.Helper()
	itinerary, err := cargo.NewItinerary([]cargo.Leg{
		mustLeg(t, sampledata.V300, sampledata.Tokyo, sampledata.Hamburg,
			date(t, 2009, time.March, 8), date(t, 2009, time.March, 12)),
		mustLeg(t, sampledata.V400, sampledata.Hamburg, sampledata.Stockholm,
			date(t, 2009, time.March, 14), date(t, 2009, time.March, 15)),
	})
	require.NoError(t, err)
	return itinerary
}

func hongkongToStockholmSpec(t *testing.T) cargo.RouteSpecification {
	t.Helper()
	spec, err := cargo.NewRouteSpecification(
		sampledata.Hongkong, sampledata.Stockholm, date(t, 2009, time.March, 18))
	require.NoError(t, err)
	return spec
}

func event(
	t *testing.T,
	trackingID kernel.TrackingID,
	eventType handling.Type,
	at location.Location,
	onVoyage *voyage.Voyage,
	completion time.Time,
) handling.HandlingEvent {
	t.Helper()
	handlingEvent, err := handling.NewHandlingEvent(
		trackingID, eventType, at, onVoyage, completion, completion.Add(10*time.Minute))
	require.NoError(t, err)
	return handlingEvent
}

func history(t *testing.T, events ...handling.HandlingEvent) handling.HandlingHistory {
	t.Helper()
	handlingHistory, err := handling.NewHandlingHistory(events)
	require.NoError(t, err)
	return handlingHistory
}

package cargo_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/sampledata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCargo(t *testing.T) {
	t.Run("should book cargo with an initial unrouted snapshot", func(t *testing.T) {
		trackingID := kernel.NewTrackingID()
		booked, err := cargo.NewCargo(trackingID, hongkongToStockholmSpec(t))
		require.NoError(t, err)

		assert.True(t, booked.TrackingID().IsEqual(trackingID))
		assert.Nil(t, booked.Itinerary())
		assert.NoError(t, booked.Validate())

		delivery := booked.Delivery()
		assert.Equal(t, cargo.NotReceived, delivery.TransportStatus())
		assert.Equal(t, cargo.NotRouted, delivery.RoutingStatus())
		assert.Nil(t, delivery.Eta())
	})

	t.Run("should fail with unconstructed inputs", func(t *testing.T) {
		_, err := cargo.NewCargo(kernel.TrackingID{}, hongkongToStockholmSpec(t))
		require.Error(t, err)

		_, err = cargo.NewCargo(kernel.NewTrackingID(), cargo.RouteSpecification{})
		require.Error(t, err)
	})

	t.Run("should fail validation for zero value and nil", func(t *testing.T) {
		var nilCargo *cargo.Cargo
		assert.ErrorIs(t, nilCargo.Validate(), cargo.ErrCargoIsNotConstructed)
		assert.ErrorIs(t, (&cargo.Cargo{}).Validate(), cargo.ErrCargoIsNotConstructed)
	})
}

func TestCargo_AssignToRoute(t *testing.T) {
	t.Run("should assign an itinerary and derive routed snapshot", func(t *testing.T) {
		booked, err := cargo.NewCargo(kernel.NewTrackingID(), hongkongToStockholmSpec(t))
		require.NoError(t, err)

		require.NoError(t, booked.AssignToRoute(hongkongToStockholm(t)))
		require.NoError(t, booked.DeriveDeliveryProgress(handling.HandlingHistory{}, time.Now().UTC()))

		delivery := booked.Delivery()
		assert.Equal(t, cargo.Routed, delivery.RoutingStatus())
		require.NotNil(t, delivery.NextExpectedActivity())
		assert.Equal(t, handling.Receive, delivery.NextExpectedActivity().EventType())
	})

	t.Run("should reject nil itinerary", func(t *testing.T) {
		booked, err := cargo.NewCargo(kernel.NewTrackingID(), hongkongToStockholmSpec(t))
		require.NoError(t, err)
		require.Error(t, booked.AssignToRoute(nil))
	})
}

func TestCargo_SpecifyNewRoute(t *testing.T) {
	t.Run("should turn misrouted when the itinerary no longer fits", func(t *testing.T) {
		booked, err := cargo.NewCargo(kernel.NewTrackingID(), hongkongToStockholmSpec(t))
		require.NoError(t, err)
		require.NoError(t, booked.AssignToRoute(hongkongToStockholm(t)))

		newSpec, err := cargo.NewRouteSpecification(
			sampledata.Hongkong, sampledata.Helsinki, date(t, 2009, time.March, 18))
		require.NoError(t, err)
		require.NoError(t, booked.SpecifyNewRoute(newSpec))
		require.NoError(t, booked.DeriveDeliveryProgress(handling.HandlingHistory{}, time.Now().UTC()))

		assert.Equal(t, cargo.Misrouted, booked.Delivery().RoutingStatus())
	})
}

func TestRestoreCargo(t *testing.T) {
	t.Run("should round trip a routed cargo", func(t *testing.T) {
		trackingID := kernel.NewTrackingID()
		spec := hongkongToStockholmSpec(t)
		itinerary := hongkongToStockholm(t)
		delivery := derive(t, spec, itinerary, history(t))

		restored, err := cargo.RestoreCargo(trackingID, spec, itinerary, delivery)
		require.NoError(t, err)

		assert.True(t, restored.TrackingID().IsEqual(trackingID))
		assert.True(t, restored.Itinerary().IsEqual(itinerary))
		assert.True(t, restored.Delivery().IsEqual(delivery))
	})

	t.Run("should accept nil itinerary for an unrouted cargo", func(t *testing.T) {
		spec := hongkongToStockholmSpec(t)
		delivery := derive(t, spec, nil, history(t))

		restored, err := cargo.RestoreCargo(kernel.NewTrackingID(), spec, nil, delivery)
		require.NoError(t, err)
		assert.Nil(t, restored.Itinerary())
	})

	t.Run("should reject an unconstructed delivery", func(t *testing.T) {
		_, err := cargo.RestoreCargo(
			kernel.NewTrackingID(), hongkongToStockholmSpec(t), nil, cargo.Delivery{})
		require.Error(t, err)
	})
}

// TestCargo_Lifecycle walks a cargo from booking in Hongkong to claim in
// Stockholm, including a misdirection to Tokyo and the reroute that
// repairs it.
func TestCargo_Lifecycle(t *testing.T) {
	trackingID := kernel.NewTrackingID()
	tracked, err := cargo.NewCargo(trackingID, hongkongToStockholmSpec(t))
	require.NoError(t, err)

	var events []handling.HandlingEvent
	handle := func(handlingEvent handling.HandlingEvent) {
		t.Helper()
		events = append(events, handlingEvent)
		require.NoError(t, tracked.DeriveDeliveryProgress(history(t, events...), time.Now().UTC()))
	}

	// booked, not yet routed
	assert.Equal(t, cargo.NotRouted, tracked.Delivery().RoutingStatus())
	assert.Equal(t, cargo.NotReceived, tracked.Delivery().TransportStatus())
	assert.Nil(t, tracked.Delivery().Eta())

	// routed Hongkong -> New York -> Chicago -> Stockholm
	require.NoError(t, tracked.AssignToRoute(hongkongToStockholm(t)))
	require.NoError(t, tracked.DeriveDeliveryProgress(history(t), time.Now().UTC()))
	assert.Equal(t, cargo.Routed, tracked.Delivery().RoutingStatus())
	require.NotNil(t, tracked.Delivery().NextExpectedActivity())
	assert.Equal(t, handling.Receive, tracked.Delivery().NextExpectedActivity().EventType())
	assert.True(t, tracked.Delivery().NextExpectedActivity().Location().IsEqual(sampledata.Hongkong))

	// received at origin
	handle(event(t, trackingID, handling.Receive, sampledata.Hongkong, nil, date(t, 2009, time.March, 1)))
	assert.Equal(t, cargo.InPort, tracked.Delivery().TransportStatus())
	assert.True(t, tracked.Delivery().LastKnownLocation().IsEqual(sampledata.Hongkong))

	// loaded onto V100
	handle(event(t, trackingID, handling.Load, sampledata.Hongkong, sampledata.V100, date(t, 2009, time.March, 3)))
	assert.Equal(t, cargo.OnboardCarrier, tracked.Delivery().TransportStatus())
	assert.True(t, tracked.Delivery().CurrentVoyage().IsEqual(sampledata.V100))
	require.NotNil(t, tracked.Delivery().NextExpectedActivity())
	assert.Equal(t, handling.Unload, tracked.Delivery().NextExpectedActivity().EventType())
	assert.True(t, tracked.Delivery().NextExpectedActivity().Location().IsEqual(sampledata.NewYork))

	// unloaded in Tokyo: wrong city, cargo is misdirected
	handle(event(t, trackingID, handling.Unload, sampledata.Tokyo, sampledata.V100, date(t, 2009, time.March, 5)))
	assert.True(t, tracked.Delivery().IsMisdirected())
	assert.Nil(t, tracked.Delivery().CurrentVoyage())
	assert.True(t, tracked.Delivery().LastKnownLocation().IsEqual(sampledata.Tokyo))
	assert.Nil(t, tracked.Delivery().NextExpectedActivity())

	// rerouted from Tokyo via Hamburg
	newSpec, err := cargo.NewRouteSpecification(
		sampledata.Tokyo, sampledata.Stockholm, date(t, 2009, time.March, 18))
	require.NoError(t, err)
	require.NoError(t, tracked.SpecifyNewRoute(newSpec))
	require.NoError(t, tracked.AssignToRoute(tokyoToStockholm(t)))
	require.NoError(t, tracked.DeriveDeliveryProgress(history(t, events...), time.Now().UTC()))
	assert.Equal(t, cargo.Routed, tracked.Delivery().RoutingStatus())
	// still misdirected: the Tokyo unload fits no leg of the new itinerary either
	assert.True(t, tracked.Delivery().IsMisdirected())

	// back on plan: load in Tokyo, unload in Hamburg, reload, unload in Stockholm
	handle(event(t, trackingID, handling.Load, sampledata.Tokyo, sampledata.V300, date(t, 2009, time.March, 8)))
	assert.Equal(t, cargo.OnboardCarrier, tracked.Delivery().TransportStatus())
	assert.True(t, tracked.Delivery().CurrentVoyage().IsEqual(sampledata.V300))
	assert.False(t, tracked.Delivery().IsMisdirected())

	handle(event(t, trackingID, handling.Unload, sampledata.Hamburg, sampledata.V300, date(t, 2009, time.March, 12)))
	require.NotNil(t, tracked.Delivery().NextExpectedActivity())
	assert.Equal(t, handling.Load, tracked.Delivery().NextExpectedActivity().EventType())
	assert.True(t, tracked.Delivery().NextExpectedActivity().Location().IsEqual(sampledata.Hamburg))
	assert.True(t, tracked.Delivery().NextExpectedActivity().Voyage().IsEqual(sampledata.V400))

	handle(event(t, trackingID, handling.Load, sampledata.Hamburg, sampledata.V400, date(t, 2009, time.March, 14)))
	handle(event(t, trackingID, handling.Unload, sampledata.Stockholm, sampledata.V400, date(t, 2009, time.March, 15)))
	assert.Equal(t, cargo.InPort, tracked.Delivery().TransportStatus())
	assert.False(t, tracked.Delivery().IsMisdirected())
	require.NotNil(t, tracked.Delivery().NextExpectedActivity())
	assert.Equal(t, handling.Claim, tracked.Delivery().NextExpectedActivity().EventType())

	// claimed in Stockholm
	handle(event(t, trackingID, handling.Claim, sampledata.Stockholm, nil, date(t, 2009, time.March, 16)))
	assert.Equal(t, cargo.Claimed, tracked.Delivery().TransportStatus())
	assert.True(t, tracked.Delivery().LastKnownLocation().IsEqual(sampledata.Stockholm))
	assert.Nil(t, tracked.Delivery().Eta())
	assert.Nil(t, tracked.Delivery().NextExpectedActivity())
}

package handling_test

import (
	"errors"
	"testing"
	"time"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/sampledata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCompletion   = time.Date(2009, time.March, 1, 12, 0, 0, 0, time.UTC)
	testRegistration = time.Date(2009, time.March, 1, 12, 5, 0, 0, time.UTC)
)

func TestNewHandlingEvent(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	t.Run("should create receive event without a voyage", func(t *testing.T) {
		event, err := handling.NewHandlingEvent(
			trackingID, handling.Receive, sampledata.Hongkong, nil, testCompletion, testRegistration)
		require.NoError(t, err)

		assert.True(t, event.TrackingID().IsEqual(trackingID))
		assert.Equal(t, handling.Receive, event.EventType())
		assert.True(t, event.Location().IsEqual(sampledata.Hongkong))
		assert.Nil(t, event.Voyage())
		assert.True(t, event.CompletionTime().Equal(testCompletion))
		assert.True(t, event.RegistrationTime().Equal(testRegistration))
		assert.NoError(t, event.Validate())
	})

	t.Run("should create load event with a voyage", func(t *testing.T) {
		event, err := handling.NewHandlingEvent(
			trackingID, handling.Load, sampledata.Hongkong, sampledata.V100, testCompletion, testRegistration)
		require.NoError(t, err)
		assert.True(t, event.Voyage().IsEqual(sampledata.V100))
	})

	t.Run("should fail load event without a voyage", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			trackingID, handling.Load, sampledata.Hongkong, nil, testCompletion, testRegistration)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail unload event without a voyage", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			trackingID, handling.Unload, sampledata.NewYork, nil, testCompletion, testRegistration)
		require.Error(t, err)
		assert.True(t, errors.Is(err, errs.ErrValueIsRequired))
	})

	t.Run("should fail receive, customs and claim events carrying a voyage", func(t *testing.T) {
		for _, eventType := range []handling.Type{handling.Receive, handling.Customs, handling.Claim} {
			_, err := handling.NewHandlingEvent(
				trackingID, eventType, sampledata.Hongkong, sampledata.V100, testCompletion, testRegistration)
			require.Error(t, err, eventType.String())
			assert.True(t, errors.Is(err, errs.ErrValueIsInvalid))
		}
	})

	t.Run("should fail with invalid event type", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			trackingID, handling.Unknown, sampledata.Hongkong, nil, testCompletion, testRegistration)
		require.Error(t, err)
	})

	t.Run("should fail with unconstructed tracking id", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			kernel.TrackingID{}, handling.Receive, sampledata.Hongkong, nil, testCompletion, testRegistration)
		require.Error(t, err)
	})

	t.Run("should fail with zero completion or registration time", func(t *testing.T) {
		_, err := handling.NewHandlingEvent(
			trackingID, handling.Receive, sampledata.Hongkong, nil, time.Time{}, testRegistration)
		require.Error(t, err)

		_, err = handling.NewHandlingEvent(
			trackingID, handling.Receive, sampledata.Hongkong, nil, testCompletion, time.Time{})
		require.Error(t, err)
	})
}

func TestHandlingEvent_Validate(t *testing.T) {
	t.Run("should fail for zero value", func(t *testing.T) {
		var event handling.HandlingEvent
		assert.ErrorIs(t, event.Validate(), handling.ErrHandlingEventIsNotConstructed)
	})
}

func TestHandlingEvent_IsEqual(t *testing.T) {
	trackingID := kernel.NewTrackingID()

	newEvent := func(registration time.Time) handling.HandlingEvent {
		event, err := handling.NewHandlingEvent(
			trackingID, handling.Load, sampledata.Hongkong, sampledata.V100, testCompletion, registration)
		require.NoError(t, err)
		return event
	}

	t.Run("should treat events differing only in registration time as equal", func(t *testing.T) {
		first := newEvent(testRegistration)
		second := newEvent(testRegistration.Add(2 * time.Hour))
		assert.True(t, first.IsEqual(second))
	})

	t.Run("should distinguish events by completion time", func(t *testing.T) {
		first := newEvent(testRegistration)
		second, err := handling.NewHandlingEvent(
			trackingID, handling.Load, sampledata.Hongkong, sampledata.V100,
			testCompletion.Add(time.Hour), testRegistration)
		require.NoError(t, err)
		assert.False(t, first.IsEqual(second))
	})

	t.Run("should distinguish events by voyage", func(t *testing.T) {
		first := newEvent(testRegistration)
		second, err := handling.NewHandlingEvent(
			trackingID, handling.Load, sampledata.Hongkong, sampledata.V300, testCompletion, testRegistration)
		require.NoError(t, err)
		assert.False(t, first.IsEqual(second))
	})

	t.Run("should distinguish events by cargo", func(t *testing.T) {
		first := newEvent(testRegistration)
		second, err := handling.NewHandlingEvent(
			kernel.NewTrackingID(), handling.Load, sampledata.Hongkong, sampledata.V100,
			testCompletion, testRegistration)
		require.NoError(t, err)
		assert.False(t, first.IsEqual(second))
	})
}

package commands_test

import (
	"testing"
	"time"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBookCargoCommand(t *testing.T) {
	trackingID := kernel.NewTrackingID()
	origin := mustUnLocode(t, "CNHKG")
	destination := mustUnLocode(t, "SESTO")
	deadline := day(2009, 3, 18)

	t.Run("should create command with valid data", func(t *testing.T) {
		cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, deadline)
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, trackingID, cmd.TrackingID())
		assert.Equal(t, origin, cmd.Origin())
		assert.Equal(t, destination, cmd.Destination())
		assert.True(t, cmd.ArrivalDeadline().Equal(deadline))
	})

	t.Run("should reject equal origin and destination", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(trackingID, origin, origin, deadline)
		require.Error(t, err)
	})

	t.Run("should reject zero arrival deadline", func(t *testing.T) {
		_, err := commands.NewBookCargoCommand(trackingID, origin, destination, time.Time{})
		require.Error(t, err)
	})

	t.Run("should reject zero value command", func(t *testing.T) {
		var cmd commands.BookCargoCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrBookCargoCommandIsNotConstructed)
	})
}

package kernel_test

import (
	"testing"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnLocode(t *testing.T) {
	t.Run("should allow valid UN location codes", func(t *testing.T) {
		for _, code := range []string{"AA234", "AAA9B", "AAAAA", "SESTO", "CNHKG"} {
			locode, err := kernel.NewUnLocode(code)

			require.NoError(t, err, "code %s", code)
			require.NoError(t, locode.Validate())
		}
	})

	t.Run("should reject invalid UN location codes", func(t *testing.T) {
		for _, code := range []string{"AAAA", "AAAAAA", "22AAA", "AA111", "AAAA1"} {
			_, err := kernel.NewUnLocode(code)

			require.Error(t, err, "code %s", code)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("should reject empty code", func(t *testing.T) {
		_, err := kernel.NewUnLocode("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should normalize to uppercase", func(t *testing.T) {
		locode, err := kernel.NewUnLocode("AbcDe")

		require.NoError(t, err)
		assert.Equal(t, "ABCDE", locode.String())
	})
}

func TestUnLocode_Validate(t *testing.T) {
	t.Run("should fail validation for zero value", func(t *testing.T) {
		var locode kernel.UnLocode

		err := locode.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrUnLocodeIsNotConstructed, err)
	})
}

func TestUnLocode_IsEqual(t *testing.T) {
	t.Run("should be case-insensitive", func(t *testing.T) {
		allCaps, _ := kernel.NewUnLocode("ABCDE")
		mixedCase, _ := kernel.NewUnLocode("aBcDe")

		assert.True(t, allCaps.IsEqual(mixedCase))
		assert.True(t, mixedCase.IsEqual(allCaps))
		assert.True(t, allCaps.IsEqual(allCaps))
	})

	t.Run("should return false for different codes", func(t *testing.T) {
		first, _ := kernel.NewUnLocode("ABCDE")
		second, _ := kernel.NewUnLocode("FGHIJ")

		assert.False(t, first.IsEqual(second))
	})
}

package queries_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetUnroutedCargosQuery_Valid(t *testing.T) {
	query := queries.NewGetUnroutedCargosQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetUnroutedCargosQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetUnroutedCargosQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetUnroutedCargosQueryIsNotConstructed)
}

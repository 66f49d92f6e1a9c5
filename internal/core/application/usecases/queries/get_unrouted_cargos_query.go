package queries

import (
	"errors"
	"time"

	"cargotracker/internal/pkg/guard"
)

var (
	ErrGetUnroutedCargosQueryIsNotConstructed = errors.New(
		"GetUnroutedCargosQuery must be created via NewGetUnroutedCargosQuery constructor",
	)
)

// GetUnroutedCargosQuery retrieves all cargos still waiting for an
// itinerary. Used by booking staff to work through the routing backlog.
//
// Example:
//
//	query := NewGetUnroutedCargosQuery()
//	handler := NewGetUnroutedCargosQueryHandler(db)
//
//	cargos, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get unrouted cargos: %w", err)
//	}
type GetUnroutedCargosQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUnroutedCargosQuery creates a query to retrieve unrouted cargos.
// This is a parameterless query.
func NewGetUnroutedCargosQuery() GetUnroutedCargosQuery {
	return GetUnroutedCargosQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUnroutedCargosQueryIsNotConstructed if validation fails.
func (q GetUnroutedCargosQuery) Validate() error {
	return q.guard.Validate(ErrGetUnroutedCargosQueryIsNotConstructed)
}

// GetUnroutedCargosQueryResponse represents one cargo awaiting routing.
type GetUnroutedCargosQueryResponse struct {
	TrackingID      string
	Origin          string
	Destination     string
	ArrivalDeadline time.Time
}

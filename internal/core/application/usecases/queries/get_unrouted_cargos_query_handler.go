package queries

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"

	"gorm.io/gorm"
)

// GetUnroutedCargosQueryHandler retrieves cargos without an assigned
// itinerary from the database.
//
// Example:
//
//	handler := NewGetUnroutedCargosQueryHandler(db)
//	query := NewGetUnroutedCargosQuery()
//
//	unrouted, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get unrouted cargos: %v", err)
//	    return err
//	}
type GetUnroutedCargosQueryHandler struct {
	db *gorm.DB
}

// NewGetUnroutedCargosQueryHandler creates a handler for unrouted cargo queries.
// Requires a GORM database connection for query execution.
func NewGetUnroutedCargosQueryHandler(db *gorm.DB) GetUnroutedCargosQueryHandler {
	return GetUnroutedCargosQueryHandler{db: db}
}

// Handle executes the query to retrieve all cargos in NOT_ROUTED status.
// Results are sorted by tracking id for consistent output.
func (h GetUnroutedCargosQueryHandler) Handle(
	ctx context.Context,
	query GetUnroutedCargosQuery,
) ([]GetUnroutedCargosQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	cargos := make([]GetUnroutedCargosQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin_un_locode,
			destination_un_locode,
			arrival_deadline
		FROM cargos
		WHERE routing_status = ?
		ORDER BY tracking_id
	`, cargo.NotRouted).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var cargoResp GetUnroutedCargosQueryResponse

		if err = rows.Scan(
			&cargoResp.TrackingID,
			&cargoResp.Origin,
			&cargoResp.Destination,
			&cargoResp.ArrivalDeadline,
		); err != nil {
			return nil, err
		}

		cargos = append(cargos, cargoResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return cargos, nil
}

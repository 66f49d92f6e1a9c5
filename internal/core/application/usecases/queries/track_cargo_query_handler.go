package queries

import (
	"context"
	"database/sql"
	"errors"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/pkg/errs"

	"gorm.io/gorm"
)

// TrackCargoQueryHandler reads the tracking view straight from the
// database. The delivery snapshot columns are denormalized at write time
// by the command side, so no domain re-derivation happens here.
type TrackCargoQueryHandler struct {
	db *gorm.DB
}

// NewTrackCargoQueryHandler creates a handler for cargo tracking queries.
// Requires a GORM database connection for query execution.
func NewTrackCargoQueryHandler(db *gorm.DB) TrackCargoQueryHandler {
	return TrackCargoQueryHandler{db: db}
}

// Handle executes the tracking query. Returns an object not found error
// for an unknown tracking id. The handling history is ordered most recent
// completion first.
func (h TrackCargoQueryHandler) Handle(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response, err := h.loadCargo(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	events, err := h.loadHandlingEvents(ctx, query)
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}
	response.HandlingEvents = events

	return response, nil
}

func (h TrackCargoQueryHandler) loadCargo(
	ctx context.Context,
	query TrackCargoQuery,
) (TrackCargoQueryResponse, error) {
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			tracking_id,
			origin_un_locode,
			origin_name,
			destination_un_locode,
			destination_name,
			arrival_deadline,
			transport_status,
			routing_status,
			last_known_un_locode,
			last_known_name,
			current_voyage_number,
			is_misdirected,
			eta,
			next_expected_event_type,
			next_expected_un_locode,
			next_expected_name,
			next_expected_voyage_number
		FROM cargos
		WHERE tracking_id = ?
	`, query.TrackingID().String()).Row()

	var (
		response                 TrackCargoQueryResponse
		transportStatus          int
		routingStatus            int
		lastKnownUnLocode        sql.NullString
		lastKnownName            sql.NullString
		currentVoyageNumber      sql.NullString
		eta                      sql.NullTime
		nextExpectedEventType    sql.NullInt64
		nextExpectedUnLocode     sql.NullString
		nextExpectedName         sql.NullString
		nextExpectedVoyageNumber sql.NullString
	)

	err := row.Scan(
		&response.TrackingID,
		&response.Origin,
		&response.OriginName,
		&response.Destination,
		&response.DestinationName,
		&response.ArrivalDeadline,
		&transportStatus,
		&routingStatus,
		&lastKnownUnLocode,
		&lastKnownName,
		&currentVoyageNumber,
		&response.IsMisdirected,
		&eta,
		&nextExpectedEventType,
		&nextExpectedUnLocode,
		&nextExpectedName,
		&nextExpectedVoyageNumber,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return TrackCargoQueryResponse{}, errs.NewObjectNotFoundError("cargo", query.TrackingID().String())
	}
	if err != nil {
		return TrackCargoQueryResponse{}, err
	}

	response.TransportStatus = cargo.TransportStatus(transportStatus).String()
	response.RoutingStatus = cargo.RoutingStatus(routingStatus).String()

	if lastKnownUnLocode.Valid {
		rendered := lastKnownUnLocode.String
		response.LastKnownLocation = &rendered
	}
	if currentVoyageNumber.Valid {
		rendered := currentVoyageNumber.String
		response.CurrentVoyageNumber = &rendered
	}
	if eta.Valid {
		at := eta.Time
		response.Eta = &at
	}
	if nextExpectedEventType.Valid {
		response.NextExpectedActivity = &NextExpectedActivityResponse{
			EventType:    handling.Type(nextExpectedEventType.Int64).String(),
			UnLocode:     nextExpectedUnLocode.String,
			LocationName: nextExpectedName.String,
			VoyageNumber: nextExpectedVoyageNumber.String,
		}
	}

	return response, nil
}

func (h TrackCargoQueryHandler) loadHandlingEvents(
	ctx context.Context,
	query TrackCargoQuery,
) ([]TrackedHandlingEventResponse, error) {
	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			event_type,
			un_locode,
			location_name,
			voyage_number,
			completion_time
		FROM handling_events
		WHERE tracking_id = ?
		ORDER BY completion_time DESC, id DESC
	`, query.TrackingID().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]TrackedHandlingEventResponse, 0)
	for rows.Next() {
		var (
			event        TrackedHandlingEventResponse
			eventType    int
			voyageNumber sql.NullString
		)

		if err = rows.Scan(
			&eventType,
			&event.UnLocode,
			&event.LocationName,
			&voyageNumber,
			&event.CompletionTime,
		); err != nil {
			return nil, err
		}

		event.EventType = handling.Type(eventType).String()
		event.VoyageNumber = voyageNumber.String
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

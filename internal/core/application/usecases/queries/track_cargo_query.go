package queries

import (
	"errors"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/pkg/guard"
)

var (
	ErrTrackCargoQueryIsNotConstructed = errors.New(
		"TrackCargoQuery must be created via NewTrackCargoQuery constructor",
	)
)

// TrackCargoQuery retrieves the public tracking view of a single cargo:
// where it is, whether it is on track and what should happen to it next.
//
// Example:
//
//	query, err := NewTrackCargoQuery(trackingID)
//	if err != nil {
//	    return err
//	}
//	view, err := handler.Handle(ctx, query)
type TrackCargoQuery struct {
	trackingID kernel.TrackingID

	guard guard.ConstructorGuard
}

// NewTrackCargoQuery creates a query for the given tracking id.
func NewTrackCargoQuery(trackingID kernel.TrackingID) (TrackCargoQuery, error) {
	if err := trackingID.Validate(); err != nil {
		return TrackCargoQuery{}, err
	}

	return TrackCargoQuery{
		trackingID: trackingID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q TrackCargoQuery) Validate() error {
	return q.guard.Validate(ErrTrackCargoQueryIsNotConstructed)
}

// TrackingID returns the tracking id being queried.
func (q TrackCargoQuery) TrackingID() kernel.TrackingID {
	return q.trackingID
}

// TrackCargoQueryResponse is the tracking view of one cargo. Statuses are
// rendered as their wire names (for example "ONBOARD_CARRIER"), locations
// as UN location codes with display names.
type TrackCargoQueryResponse struct {
	TrackingID           string
	Origin               string
	OriginName           string
	Destination          string
	DestinationName      string
	ArrivalDeadline      time.Time
	TransportStatus      string
	RoutingStatus        string
	LastKnownLocation    *string
	CurrentVoyageNumber  *string
	IsMisdirected        bool
	Eta                  *time.Time
	NextExpectedActivity *NextExpectedActivityResponse
	HandlingEvents       []TrackedHandlingEventResponse
}

// NextExpectedActivityResponse describes what should happen to the cargo
// next according to its itinerary.
type NextExpectedActivityResponse struct {
	EventType    string
	UnLocode     string
	LocationName string
	VoyageNumber string
}

// TrackedHandlingEventResponse is one row of the cargo's handling history,
// most recent first.
type TrackedHandlingEventResponse struct {
	EventType      string
	UnLocode       string
	LocationName   string
	VoyageNumber   string
	CompletionTime time.Time
}

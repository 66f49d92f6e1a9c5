package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// BookCargoRequest is the payload for booking a new cargo.
type BookCargoRequest struct {
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// BookCargoResponse returns the tracking id assigned to a booked cargo.
type BookCargoResponse struct {
	TrackingID string `json:"trackingId"`
}

// ChangeDestinationRequest is the payload for rerouting a cargo to a new
// destination.
type ChangeDestinationRequest struct {
	Destination string `json:"destination"`
}

// HandlingReportRequest is one incident report from a port or carrier.
// VoyageNumber is set only for load and unload reports.
type HandlingReportRequest struct {
	CompletionTime time.Time `json:"completionTime"`
	TrackingID     string    `json:"trackingId"`
	VoyageNumber   string    `json:"voyageNumber,omitempty"`
	UnLocode       string    `json:"unLocode"`
	EventType      string    `json:"eventType"`
}

// UnroutedCargo is one cargo still waiting for a route assignment.
type UnroutedCargo struct {
	TrackingID      string    `json:"trackingId"`
	Origin          string    `json:"origin"`
	Destination     string    `json:"destination"`
	ArrivalDeadline time.Time `json:"arrivalDeadline"`
}

// TrackCargoResponse is the public tracking view of one cargo.
type TrackCargoResponse struct {
	TrackingID           string                `json:"trackingId"`
	Origin               string                `json:"origin"`
	OriginName           string                `json:"originName"`
	Destination          string                `json:"destination"`
	DestinationName      string                `json:"destinationName"`
	ArrivalDeadline      time.Time             `json:"arrivalDeadline"`
	TransportStatus      string                `json:"transportStatus"`
	RoutingStatus        string                `json:"routingStatus"`
	LastKnownLocation    *string               `json:"lastKnownLocation,omitempty"`
	CurrentVoyageNumber  *string               `json:"currentVoyageNumber,omitempty"`
	IsMisdirected        bool                  `json:"isMisdirected"`
	Eta                  *time.Time            `json:"eta,omitempty"`
	NextExpectedActivity *NextExpectedActivity `json:"nextExpectedActivity,omitempty"`
	HandlingEvents       []TrackedEvent        `json:"handlingEvents"`
}

// NextExpectedActivity describes what should happen to a cargo next
// according to its itinerary.
type NextExpectedActivity struct {
	EventType    string `json:"eventType"`
	UnLocode     string `json:"unLocode"`
	LocationName string `json:"locationName"`
	VoyageNumber string `json:"voyageNumber,omitempty"`
}

// TrackedEvent is one row of a cargo's handling history.
type TrackedEvent struct {
	EventType      string    `json:"eventType"`
	UnLocode       string    `json:"unLocode"`
	LocationName   string    `json:"locationName"`
	VoyageNumber   string    `json:"voyageNumber,omitempty"`
	CompletionTime time.Time `json:"completionTime"`
}

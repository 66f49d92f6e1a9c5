package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// RoutingStatus describes the relation between a cargo's assigned
// itinerary and its route specification.
type RoutingStatus int

const (
	// RoutingUnknown represents an invalid or underivable routing status.
	// This value (0) helps catch uninitialized RoutingStatus values.
	RoutingUnknown RoutingStatus = iota

	// NotRouted means no itinerary has been assigned yet.
	NotRouted

	// Routed means the assigned itinerary satisfies the route specification.
	Routed

	// Misrouted means an itinerary is assigned but no longer satisfies the
	// route specification, typically after a destination change.
	Misrouted
)

// getRoutingStatusStrings returns a map of RoutingStatus values to their
// string representations. All statuses are included for string conversion.
func getRoutingStatusStrings() map[RoutingStatus]string {
	return map[RoutingStatus]string{
		RoutingUnknown: "UNKNOWN",
		NotRouted:      "NOT_ROUTED",
		Routed:         "ROUTED",
		Misrouted:      "MISROUTED",
	}
}

// getValidRoutingStatusStrings returns a map of only valid RoutingStatus
// values to support validation.
func getValidRoutingStatusStrings() map[RoutingStatus]string {
	//nolint:exhaustive // RoutingUnknown is intentionally excluded as it's invalid
	return map[RoutingStatus]string{
		NotRouted: "NOT_ROUTED",
		Routed:    "ROUTED",
		Misrouted: "MISROUTED",
	}
}

// Validate checks if the RoutingStatus value is valid.
func (s RoutingStatus) Validate() error {
	if _, ok := getValidRoutingStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("routing status is invalid",
			fmt.Errorf("%d is not a valid routing status", s))
	}
	return nil
}

// String returns the upper case name of the routing status.
// Returns "UNKNOWN" for invalid values.
func (s RoutingStatus) String() string {
	if str, ok := getRoutingStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

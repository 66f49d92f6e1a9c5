package cargo

import (
	"fmt"

	"cargotracker/internal/pkg/errs"
)

// TransportStatus describes where a cargo physically is in its journey,
// derived from the most recently completed handling event.
type TransportStatus int

const (
	// TransportUnknown represents an invalid or underivable transport status.
	// This value (0) helps catch uninitialized TransportStatus values.
	TransportUnknown TransportStatus = iota

	// NotReceived means no handling has been recorded yet.
	NotReceived

	// InPort means the cargo was last received, unloaded, customs cleared
	// or otherwise handled ashore.
	InPort

	// OnboardCarrier means the cargo was last loaded onto a voyage.
	OnboardCarrier

	// Claimed means the customer has claimed the cargo. Final state.
	Claimed
)

// getTransportStatusStrings returns a map of TransportStatus values to their
// string representations. All statuses are included for string conversion.
func getTransportStatusStrings() map[TransportStatus]string {
	return map[TransportStatus]string{
		TransportUnknown: "UNKNOWN",
		NotReceived:      "NOT_RECEIVED",
		InPort:           "IN_PORT",
		OnboardCarrier:   "ONBOARD_CARRIER",
		Claimed:          "CLAIMED",
	}
}

// getValidTransportStatusStrings returns a map of only valid TransportStatus
// values to support validation.
func getValidTransportStatusStrings() map[TransportStatus]string {
	//nolint:exhaustive // TransportUnknown is intentionally excluded as it's invalid
	return map[TransportStatus]string{
		NotReceived:    "NOT_RECEIVED",
		InPort:         "IN_PORT",
		OnboardCarrier: "ONBOARD_CARRIER",
		Claimed:        "CLAIMED",
	}
}

// Validate checks if the TransportStatus value is valid.
func (s TransportStatus) Validate() error {
	if _, ok := getValidTransportStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transport status is invalid",
			fmt.Errorf("%d is not a valid transport status", s))
	}
	return nil
}

// String returns the upper case name of the transport status.
// Returns "UNKNOWN" for invalid values.
func (s TransportStatus) String() string {
	if str, ok := getTransportStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

package handling

import (
	"fmt"
	"strings"

	"cargotracker/internal/pkg/errs"
)

// Type enumerates the kinds of handling events that can happen to a cargo.
//
// The type dictates whether the event carries a voyage:
//
//	Receive, Customs, Claim  no voyage (the cargo is not being moved by a carrier)
//	Load, Unload             voyage required (the cargo is put on or taken off a carrier)
//
// This contract is enforced at event construction, so a fully constructed
// HandlingEvent is always consistent with its type.
type Type int

const (
	// Unknown represents an invalid or undefined event type.
	// This value (0) helps catch uninitialized Type values.
	Unknown Type = iota

	// Receive marks the cargo entering the care of the shipping network
	// at its origin. Always the first event of a well-formed history.
	Receive

	// Load marks the cargo being loaded onto a carrier voyage.
	Load

	// Unload marks the cargo being unloaded from a carrier voyage.
	Unload

	// Customs marks a customs clearance. Customs events never disrupt
	// routing expectations but do update the last known location.
	Customs

	// Claim marks the cargo being claimed by the customer at its
	// destination. The final event of a completed delivery.
	Claim
)

// getTypeStrings returns a map of Type values to their string representations.
// All types are included for string conversion.
func getTypeStrings() map[Type]string {
	return map[Type]string{
		Unknown: "UNKNOWN",
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// getValidTypeStrings returns a map of only valid Type values.
// Only valid types are included to support validation and parsing.
func getValidTypeStrings() map[Type]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Type]string{
		Receive: "RECEIVE",
		Load:    "LOAD",
		Unload:  "UNLOAD",
		Customs: "CUSTOMS",
		Claim:   "CLAIM",
	}
}

// Validate checks if the Type value is valid.
//
// Valid types are: Receive, Load, Unload, Customs, Claim.
// Unknown (0) and any other values are invalid.
func (t Type) Validate() error {
	if _, ok := getValidTypeStrings()[t]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("event type is invalid",
			fmt.Errorf("%d is not a valid handling event type", t))
	}
	return nil
}

// String returns the upper case name of the event type.
//
// Returns "UNKNOWN" for invalid type values. This method implements the
// fmt.Stringer interface and is safe to call on any Type value.
func (t Type) String() string {
	if str, ok := getTypeStrings()[t]; ok {
		return str
	}
	return "UNKNOWN"
}

// RequiresVoyage reports whether events of this type must carry a voyage.
// Load and Unload move the cargo on and off a carrier, so they require one.
func (t Type) RequiresVoyage() bool {
	return t == Load || t == Unload
}

// ProhibitsVoyage reports whether events of this type must not carry a
// voyage. Receive, Customs and Claim happen while the cargo is ashore.
func (t Type) ProhibitsVoyage() bool {
	switch t {
	case Receive, Customs, Claim:
		return true
	default:
		return false
	}
}

// TypeFromString parses an event type from its textual form, as used in
// handling reports and API payloads. Matching is case insensitive.
//
// Returns Unknown with a validation error for unrecognized input.
func TypeFromString(s string) (Type, error) {
	normalized := strings.ToUpper(strings.TrimSpace(s))
	for eventType, str := range getValidTypeStrings() {
		if str == normalized {
			return eventType, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("event type is invalid",
		fmt.Errorf("%q is not a valid handling event type", s))
}

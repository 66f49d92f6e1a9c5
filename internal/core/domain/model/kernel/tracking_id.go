package kernel

import (
	"strings"

	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"

	"github.com/google/uuid"
)

// ErrTrackingIDIsNotConstructed is returned when attempting to use an improperly
// initialized TrackingID. Tracking ids must be created via NewTrackingID or
// TrackingIDFromString.
var ErrTrackingIDIsNotConstructed = errs.NewValueIsRequiredError(
	"tracking id must be created via NewTrackingID or TrackingIDFromString constructors")

// TrackingID uniquely identifies a cargo. It is assigned once when the cargo is
// booked and never changes. TrackingID is an immutable value object compared by
// value; the zero value is invalid and fails Validate.
//
// Example:
//
//	id := kernel.NewTrackingID()
//	same, _ := kernel.TrackingIDFromString(id.String())
//	id.IsEqual(same) // true
type TrackingID struct { //nolint:recvcheck //using for validation
	id    string
	guard guard.ConstructorGuard
}

// NewTrackingID generates a fresh, globally unique tracking id.
// New ids are derived from a random UUID, uppercased for readability on
// shipping documents.
func NewTrackingID() TrackingID {
	return TrackingID{
		id:    strings.ToUpper(uuid.NewString()),
		guard: guard.NewConstructorGuard(),
	}
}

// TrackingIDFromString reconstructs a TrackingID from its string form, for
// example when parsing a handling report or loading from persistence.
// The id is trimmed and uppercased; an empty id is rejected.
func TrackingIDFromString(s string) (TrackingID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return TrackingID{}, errs.NewValueIsRequiredError("trackingId")
	}

	return TrackingID{
		id:    strings.ToUpper(s),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate checks that the TrackingID was created via a constructor.
func (t TrackingID) Validate() error {
	return t.guard.Validate(ErrTrackingIDIsNotConstructed)
}

// String returns the canonical (uppercase) string form of the tracking id.
func (t TrackingID) String() string {
	return t.id
}

// IsEqual compares two tracking ids by value.
func (t TrackingID) IsEqual(other TrackingID) bool {
	return t.id == other.id
}

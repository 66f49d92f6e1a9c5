package ports

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
)

// HandlingEventRegistrationAttempt is the raw, unverified content of a
// handling report as it arrived from an intake surface. Fields are plain
// strings: validation happens later, in the handling event factory.
type HandlingEventRegistrationAttempt struct {
	RegistrationTime time.Time
	CompletionTime   time.Time
	TrackingID       string
	VoyageNumber     string
	UnLocode         string
	EventType        string
}

// ApplicationEvents publishes domain notifications to interested parties
// outside the core. Every operation is fire and forget: the core expects
// no return value beyond a transport error, and delivery guarantees are
// the messaging collaborator's contract.
//
// Consumers must be idempotent. In particular CargoWasMisdirected fires
// once per inspection, not once per misdirection.
type ApplicationEvents interface {
	// CargoWasHandled announces that a handling event was accepted and stored.
	CargoWasHandled(ctx context.Context, event handling.HandlingEvent) error

	// CargoWasMisdirected announces that an inspection found the cargo
	// off its itinerary.
	CargoWasMisdirected(ctx context.Context, aggregate *cargo.Cargo) error

	// CargoHasArrived announces that the cargo was claimed at its destination.
	CargoHasArrived(ctx context.Context, aggregate *cargo.Cargo) error

	// ReceivedHandlingEventRegistrationAttempt announces that an intake
	// surface received a handling report, before any validation.
	ReceivedHandlingEventRegistrationAttempt(ctx context.Context, attempt HandlingEventRegistrationAttempt) error
}

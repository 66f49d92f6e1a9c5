package handling

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"
	"cargotracker/internal/pkg/guard"
)

var (
	// ErrHandlingEventFactoryIsNotConstructed is returned when a factory instance
	// was not created through NewHandlingEventFactory.
	ErrHandlingEventFactoryIsNotConstructed = errors.New(
		"HandlingEventFactory must be created via NewHandlingEventFactory constructor",
	)

	// ErrCannotCreateHandlingEvent is the umbrella failure returned for any
	// rejected handling report. The original lookup or construction failures
	// are attached as the cause chain.
	ErrCannotCreateHandlingEvent = errors.New("cannot create handling event")

	// ErrUnknownCargo indicates the report referenced a tracking id no cargo has.
	ErrUnknownCargo = errors.New("unknown cargo")

	// ErrUnknownVoyage indicates the report referenced a voyage number no voyage has.
	ErrUnknownVoyage = errors.New("unknown voyage")

	// ErrUnknownLocation indicates the report referenced a location code no location has.
	ErrUnknownLocation = errors.New("unknown location")
)

// Lookup ports the factory resolves handling reports against. Each finder
// signals a missing entity with errs.ErrObjectNotFound; any other error is
// treated as infrastructure failure and propagated as is.
type (
	// CargoFinder checks that a cargo exists for a tracking id.
	CargoFinder interface {
		CargoExists(ctx context.Context, trackingID kernel.TrackingID) (bool, error)
	}

	// VoyageFinder resolves a voyage by its number.
	VoyageFinder interface {
		VoyageByNumber(ctx context.Context, number voyage.Number) (*voyage.Voyage, error)
	}

	// LocationFinder resolves a location by its UN location code.
	LocationFinder interface {
		LocationByUnLocode(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error)
	}
)

// HandlingEventFactory turns unverified handling reports into trusted
// HandlingEvents. The cargo, voyage and location referenced by a report are
// all resolved before construction, so a rejection lists every unknown
// reference at once rather than just the first.
type HandlingEventFactory struct {
	cargos    CargoFinder
	voyages   VoyageFinder
	locations LocationFinder

	guard guard.ConstructorGuard
}

// NewHandlingEventFactory creates a factory over the given lookup ports.
// All three finders are required.
func NewHandlingEventFactory(
	cargos CargoFinder,
	voyages VoyageFinder,
	locations LocationFinder,
) (HandlingEventFactory, error) {
	factory := HandlingEventFactory{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		factory.setCargos(cargos),
		factory.setVoyages(voyages),
		factory.setLocations(locations),
	); err != nil {
		return HandlingEventFactory{}, err
	}

	return factory, nil
}

// Validate ensures the factory was constructed through NewHandlingEventFactory.
func (f HandlingEventFactory) Validate() error {
	return f.guard.Validate(ErrHandlingEventFactoryIsNotConstructed)
}

// Create validates a raw handling report and produces a HandlingEvent.
//
// The cargo, location and (when a number is given) voyage are resolved
// against their finders. All lookups run before event construction, so a
// report with both an unknown voyage and an unknown location fails with
// both causes discoverable via errors.Is. A nil voyage number is valid and
// skips the voyage lookup entirely.
//
// Every rejection, whether from a failed lookup or from the type/voyage
// contract, is wrapped in ErrCannotCreateHandlingEvent with the original
// failure as cause. Infrastructure errors from the finders are returned
// unwrapped.
func (f HandlingEventFactory) Create(
	ctx context.Context,
	registrationTime time.Time,
	completionTime time.Time,
	trackingID kernel.TrackingID,
	voyageNumber *voyage.Number,
	unLocode kernel.UnLocode,
	eventType Type,
) (HandlingEvent, error) {
	if err := f.Validate(); err != nil {
		return HandlingEvent{}, err
	}

	var lookupErrs []error

	exists, err := f.cargos.CargoExists(ctx, trackingID)
	if err != nil {
		return HandlingEvent{}, err
	}
	if !exists {
		lookupErrs = append(lookupErrs, fmt.Errorf("%w: %s", ErrUnknownCargo, trackingID))
	}

	var eventVoyage *voyage.Voyage
	if voyageNumber != nil {
		eventVoyage, err = f.voyages.VoyageByNumber(ctx, *voyageNumber)
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			lookupErrs = append(lookupErrs, fmt.Errorf("%w: %s", ErrUnknownVoyage, *voyageNumber))
		case err != nil:
			return HandlingEvent{}, err
		}
	}

	eventLocation, err := f.locations.LocationByUnLocode(ctx, unLocode)
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		lookupErrs = append(lookupErrs, fmt.Errorf("%w: %s", ErrUnknownLocation, unLocode))
	case err != nil:
		return HandlingEvent{}, err
	}

	if len(lookupErrs) > 0 {
		return HandlingEvent{}, fmt.Errorf("%w: %w", ErrCannotCreateHandlingEvent, errors.Join(lookupErrs...))
	}

	event, err := NewHandlingEvent(trackingID, eventType, eventLocation, eventVoyage, completionTime, registrationTime)
	if err != nil {
		return HandlingEvent{}, fmt.Errorf("%w: %w", ErrCannotCreateHandlingEvent, err)
	}

	return event, nil
}

func (f *HandlingEventFactory) setCargos(cargos CargoFinder) error {
	if cargos == nil {
		return errs.NewValueIsRequiredError("cargos")
	}
	f.cargos = cargos
	return nil
}

func (f *HandlingEventFactory) setVoyages(voyages VoyageFinder) error {
	if voyages == nil {
		return errs.NewValueIsRequiredError("voyages")
	}
	f.voyages = voyages
	return nil
}

func (f *HandlingEventFactory) setLocations(locations LocationFinder) error {
	if locations == nil {
		return errs.NewValueIsRequiredError("locations")
	}
	f.locations = locations
	return nil
}

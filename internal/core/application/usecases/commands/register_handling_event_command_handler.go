package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// Inspector triggers a cargo inspection after a handling event was
// accepted. Implemented by InspectCargoCommandHandler; abstracted here so
// the registration handler can be tested without the inspection machinery.
type Inspector interface {
	Inspect(ctx context.Context, trackingID kernel.TrackingID) error
}

// RegisterHandlingEventCommandHandler turns validated handling reports
// into stored handling events. The flow mirrors the physical process:
// validate the report against reference data, store the trusted fact,
// announce it, then re-inspect the cargo against its itinerary.
type RegisterHandlingEventCommandHandler struct {
	uowFactory HandlingUoWFactory
	appEvents  ports.ApplicationEvents
	inspector  Inspector
}

// NewRegisterHandlingEventCommandHandler creates a handler for handling
// event registration. All dependencies are required.
func NewRegisterHandlingEventCommandHandler(
	uowFactory HandlingUoWFactory,
	appEvents ports.ApplicationEvents,
	inspector Inspector,
) (RegisterHandlingEventCommandHandler, error) {
	if uowFactory == nil {
		return RegisterHandlingEventCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if appEvents == nil {
		return RegisterHandlingEventCommandHandler{}, errs.NewValueIsRequiredError("appEvents")
	}
	if inspector == nil {
		return RegisterHandlingEventCommandHandler{}, errs.NewValueIsRequiredError("inspector")
	}

	return RegisterHandlingEventCommandHandler{
		uowFactory: uowFactory,
		appEvents:  appEvents,
		inspector:  inspector,
	}, nil
}

// Handle processes the registration command. A rejected report surfaces
// the factory's umbrella error with every failed lookup in its cause
// chain. On success the event is stored, CargoWasHandled goes out, and
// the cargo is inspected with a history that already includes the new
// event.
func (h *RegisterHandlingEventCommandHandler) Handle(ctx context.Context, cmd RegisterHandlingEventCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	factory, err := handling.NewHandlingEventFactory(
		cargoExistenceFinder{repo: uow.CargoRepository()},
		voyageFinder{repo: uow.VoyageRepository()},
		locationFinder{repo: uow.LocationRepository()},
	)
	if err != nil {
		return err
	}

	event, err := factory.Create(
		ctx,
		cmd.RegistrationTime(),
		cmd.CompletionTime(),
		cmd.TrackingID(),
		cmd.VoyageNumber(),
		cmd.UnLocode(),
		cmd.EventType(),
	)
	if err != nil {
		return err
	}

	if err = uow.HandlingEventRepository().Add(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.appEvents.CargoWasHandled(ctx, event); err != nil {
		return err
	}

	return h.inspector.Inspect(ctx, cmd.TrackingID())
}

// Finder adapters narrow the repository ports to the lookups the handling
// event factory needs.

type cargoExistenceFinder struct {
	repo ports.CargoRepository
}

func (f cargoExistenceFinder) CargoExists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	return f.repo.Exists(ctx, trackingID)
}

type voyageFinder struct {
	repo ports.VoyageRepository
}

func (f voyageFinder) VoyageByNumber(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	return f.repo.Get(ctx, number)
}

type locationFinder struct {
	repo ports.LocationRepository
}

func (f locationFinder) LocationByUnLocode(
	ctx context.Context,
	unLocode kernel.UnLocode,
) (location.Location, error) {
	return f.repo.Get(ctx, unLocode)
}

package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
)

// ChangeDestinationCommandHandler handles destination changes for booked
// cargos. The route specification is replaced and the delivery snapshot
// re-derived; if the assigned itinerary no longer fits, the routing status
// flips to Misrouted until the cargo is rerouted.
type ChangeDestinationCommandHandler struct {
	uowFactory ReroutingUoWFactory
}

// NewChangeDestinationCommandHandler creates a handler for destination changes.
// Requires a ReroutingUoWFactory for transactional persistence.
func NewChangeDestinationCommandHandler(uowFactory ReroutingUoWFactory) ChangeDestinationCommandHandler {
	return ChangeDestinationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the destination change command.
func (h *ChangeDestinationCommandHandler) Handle(ctx context.Context, cmd ChangeDestinationCommand) error {
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

	cargoRepo := uow.CargoRepository()
	rerouted, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	destination, err := uow.LocationRepository().Get(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	routeSpec, err := cargo.NewRouteSpecification(
		rerouted.RouteSpecification().Origin(),
		destination,
		rerouted.RouteSpecification().ArrivalDeadline(),
	)
	if err != nil {
		return err
	}

	if err = rerouted.SpecifyNewRoute(routeSpec); err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}
	if err = rerouted.DeriveDeliveryProgress(history, time.Now().UTC()); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, rerouted); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

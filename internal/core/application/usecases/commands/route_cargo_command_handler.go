package commands

import (
	"context"
	"errors"
	"time"

	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

var (
	// ErrNoRouteFound is returned when the routing service proposes no
	// itinerary satisfying the cargo's route specification.
	ErrNoRouteFound = errors.New("no route satisfies the specification")
)

// RouteCargoCommandHandler handles route assignment for booked cargos.
// Fetches candidate itineraries from the routing service, assigns the
// first satisfying one and re-derives the delivery snapshot.
type RouteCargoCommandHandler struct {
	uowFactory     CargoUoWFactory
	routingService ports.RoutingService
}

// NewRouteCargoCommandHandler creates a handler for route assignment.
// Requires a CargoUoWFactory and the routing service port.
func NewRouteCargoCommandHandler(
	uowFactory CargoUoWFactory,
	routingService ports.RoutingService,
) (RouteCargoCommandHandler, error) {
	if uowFactory == nil {
		return RouteCargoCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if routingService == nil {
		return RouteCargoCommandHandler{}, errs.NewValueIsRequiredError("routingService")
	}

	return RouteCargoCommandHandler{
		uowFactory:     uowFactory,
		routingService: routingService,
	}, nil
}

// Handle processes the routing command. Fails with ErrNoRouteFound when
// the routing service has no satisfying candidate; the cargo then stays
// in its previous routing state.
func (h *RouteCargoCommandHandler) Handle(ctx context.Context, cmd RouteCargoCommand) error {
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
	routed, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	itineraries, err := h.routingService.FetchRoutesForSpecification(ctx, routed.RouteSpecification())
	if err != nil {
		return err
	}
	if len(itineraries) == 0 {
		return ErrNoRouteFound
	}

	if err = routed.AssignToRoute(itineraries[0]); err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}
	if err = routed.DeriveDeliveryProgress(history, time.Now().UTC()); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, routed); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

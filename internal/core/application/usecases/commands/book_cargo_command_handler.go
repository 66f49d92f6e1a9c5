package commands

import (
	"context"

	"cargotracker/internal/core/domain/model/cargo"
)

// BookCargoCommandHandler handles the business logic for booking new
// cargos. Resolves the origin and destination locations, builds the route
// specification and persists the unrouted aggregate.
//
// Example:
//
//	handler := NewBookCargoCommandHandler(uowFactory)
//	cmd, _ := NewBookCargoCommand(trackingID, origin, destination, deadline)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("booking failed: %w", err)
//	}
//	// Cargo is booked and awaiting route assignment
type BookCargoCommandHandler struct {
	uowFactory BookingUoWFactory
}

// NewBookCargoCommandHandler creates a handler for cargo booking operations.
// Requires a BookingUoWFactory for transactional persistence.
func NewBookCargoCommandHandler(uowFactory BookingUoWFactory) BookCargoCommandHandler {
	return BookCargoCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the booking command. The referenced locations must
// exist in the location store; an unknown code surfaces as an object not
// found error. The new cargo starts unrouted with a NotReceived snapshot.
func (h *BookCargoCommandHandler) Handle(ctx context.Context, cmd BookCargoCommand) error {
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

	locationRepo := uow.LocationRepository()
	origin, err := locationRepo.Get(ctx, cmd.Origin())
	if err != nil {
		return err
	}
	destination, err := locationRepo.Get(ctx, cmd.Destination())
	if err != nil {
		return err
	}

	routeSpec, err := cargo.NewRouteSpecification(origin, destination, cmd.ArrivalDeadline())
	if err != nil {
		return err
	}

	booked, err := cargo.NewCargo(cmd.TrackingID(), routeSpec)
	if err != nil {
		return err
	}

	if err = uow.CargoRepository().Add(ctx, booked); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

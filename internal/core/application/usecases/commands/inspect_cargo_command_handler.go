package commands

import (
	"context"
	"time"

	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// InspectCargoCommandHandler re-runs the delivery derivation for one cargo
// and emits the notifications the fresh snapshot calls for: misdirection
// whenever the snapshot says so, arrival when the cargo was claimed at its
// destination.
//
// The misdirection notification fires once per inspection, not once per
// misdirection. A cargo inspected three times while off course produces
// three notifications; deduplication is the consumer's concern.
//
// Callers must ensure at most one concurrent inspection per tracking id,
// and that the handling history already contains the event that triggered
// the inspection.
type InspectCargoCommandHandler struct {
	uowFactory CargoUoWFactory
	appEvents  ports.ApplicationEvents
}

// NewInspectCargoCommandHandler creates a handler for cargo inspection.
// Requires a CargoUoWFactory and the notification publisher.
func NewInspectCargoCommandHandler(
	uowFactory CargoUoWFactory,
	appEvents ports.ApplicationEvents,
) (InspectCargoCommandHandler, error) {
	if uowFactory == nil {
		return InspectCargoCommandHandler{}, errs.NewValueIsRequiredError("uowFactory")
	}
	if appEvents == nil {
		return InspectCargoCommandHandler{}, errs.NewValueIsRequiredError("appEvents")
	}

	return InspectCargoCommandHandler{
		uowFactory: uowFactory,
		appEvents:  appEvents,
	}, nil
}

// Handle processes the inspection command. The snapshot is recomputed and
// persisted inside the transaction; notifications go out after the commit
// so consumers never observe a snapshot that was rolled back.
func (h *InspectCargoCommandHandler) Handle(ctx context.Context, cmd InspectCargoCommand) error {
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
	inspected, err := cargoRepo.Get(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	history, err := uow.HandlingEventRepository().GetHistory(ctx, cmd.TrackingID())
	if err != nil {
		return err
	}

	if err = inspected.DeriveDeliveryProgress(history, time.Now().UTC()); err != nil {
		return err
	}

	if err = cargoRepo.Update(ctx, inspected); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	delivery := inspected.Delivery()
	if delivery.IsMisdirected() {
		if err = h.appEvents.CargoWasMisdirected(ctx, inspected); err != nil {
			return err
		}
	}
	if hasArrived(inspected) {
		if err = h.appEvents.CargoHasArrived(ctx, inspected); err != nil {
			return err
		}
	}

	return nil
}

// Inspect builds and handles an inspection command for the tracking id.
// Satisfies the Inspector dependency of the registration handler.
func (h *InspectCargoCommandHandler) Inspect(ctx context.Context, trackingID kernel.TrackingID) error {
	cmd, err := NewInspectCargoCommand(trackingID)
	if err != nil {
		return err
	}
	return h.Handle(ctx, cmd)
}

// hasArrived reports whether the cargo was claimed at its specified
// destination.
func hasArrived(inspected *cargo.Cargo) bool {
	delivery := inspected.Delivery()
	if delivery.TransportStatus() != cargo.Claimed || delivery.LastKnownLocation() == nil {
		return false
	}
	return delivery.LastKnownLocation().IsEqual(inspected.RouteSpecification().Destination())
}

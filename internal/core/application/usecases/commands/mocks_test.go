package commands_test

import (
	"context"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockCargoRepository struct{ mock.Mock }

func (m *MockCargoRepository) Add(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Update(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockCargoRepository) Get(ctx context.Context, trackingID kernel.TrackingID) (*cargo.Cargo, error) {
	args := m.Called(ctx, trackingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cargo.Cargo), args.Error(1)
}

func (m *MockCargoRepository) Exists(ctx context.Context, trackingID kernel.TrackingID) (bool, error) {
	args := m.Called(ctx, trackingID)
	return args.Bool(0), args.Error(1)
}

type MockHandlingEventRepository struct{ mock.Mock }

func (m *MockHandlingEventRepository) Add(ctx context.Context, event handling.HandlingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockHandlingEventRepository) GetHistory(
	ctx context.Context,
	trackingID kernel.TrackingID,
) (handling.HandlingHistory, error) {
	args := m.Called(ctx, trackingID)
	return args.Get(0).(handling.HandlingHistory), args.Error(1)
}

type MockVoyageRepository struct{ mock.Mock }

func (m *MockVoyageRepository) Add(ctx context.Context, aggregate *voyage.Voyage) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockVoyageRepository) Get(ctx context.Context, number voyage.Number) (*voyage.Voyage, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*voyage.Voyage), args.Error(1)
}

func (m *MockVoyageRepository) GetAll(ctx context.Context) ([]*voyage.Voyage, error) {
	args := m.Called(ctx)
	return args.Get(0).([]*voyage.Voyage), args.Error(1)
}

type MockLocationRepository struct{ mock.Mock }

func (m *MockLocationRepository) Add(ctx context.Context, aggregate location.Location) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockLocationRepository) Get(ctx context.Context, unLocode kernel.UnLocode) (location.Location, error) {
	args := m.Called(ctx, unLocode)
	return args.Get(0).(location.Location), args.Error(1)
}

func (m *MockLocationRepository) GetAll(ctx context.Context) ([]location.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]location.Location), args.Error(1)
}

// MockUoW satisfies every unit of work interface in this package, so one
// mock serves all handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) CargoRepository() ports.CargoRepository {
	args := m.Called()
	return args.Get(0).(ports.CargoRepository)
}

func (m *MockUoW) HandlingEventRepository() ports.HandlingEventRepository {
	args := m.Called()
	return args.Get(0).(ports.HandlingEventRepository)
}

func (m *MockUoW) VoyageRepository() ports.VoyageRepository {
	args := m.Called()
	return args.Get(0).(ports.VoyageRepository)
}

func (m *MockUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockBookingUoWFactory struct{ mock.Mock }

func (m *MockBookingUoWFactory) Create() commands.BookingUoW {
	args := m.Called()
	return args.Get(0).(commands.BookingUoW)
}

type MockCargoUoWFactory struct{ mock.Mock }

func (m *MockCargoUoWFactory) Create() commands.CargoUoW {
	args := m.Called()
	return args.Get(0).(commands.CargoUoW)
}

type MockReroutingUoWFactory struct{ mock.Mock }

func (m *MockReroutingUoWFactory) Create() commands.ReroutingUoW {
	args := m.Called()
	return args.Get(0).(commands.ReroutingUoW)
}

type MockHandlingUoWFactory struct{ mock.Mock }

func (m *MockHandlingUoWFactory) Create() commands.HandlingUoW {
	args := m.Called()
	return args.Get(0).(commands.HandlingUoW)
}

type MockApplicationEvents struct{ mock.Mock }

func (m *MockApplicationEvents) CargoWasHandled(ctx context.Context, event handling.HandlingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockApplicationEvents) CargoWasMisdirected(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockApplicationEvents) CargoHasArrived(ctx context.Context, aggregate *cargo.Cargo) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockApplicationEvents) ReceivedHandlingEventRegistrationAttempt(
	ctx context.Context,
	attempt ports.HandlingEventRegistrationAttempt,
) error {
	args := m.Called(ctx, attempt)
	return args.Error(0)
}

type MockRoutingService struct{ mock.Mock }

func (m *MockRoutingService) FetchRoutesForSpecification(
	ctx context.Context,
	routeSpec cargo.RouteSpecification,
) ([]*cargo.Itinerary, error) {
	args := m.Called(ctx, routeSpec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*cargo.Itinerary), args.Error(1)
}

type MockInspector struct{ mock.Mock }

func (m *MockInspector) Inspect(ctx context.Context, trackingID kernel.TrackingID) error {
	args := m.Called(ctx, trackingID)
	return args.Error(0)
}

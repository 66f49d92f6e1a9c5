package commands_test

import (
	"testing"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRouteCargoCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	booked := unroutedCargo(t)
	itinerary := directItinerary(t)
	cmd, _ := commands.NewRouteCargoCommand(booked.TrackingID())

	cargoRepo := new(MockCargoRepository)
	eventRepo := new(MockHandlingEventRepository)
	uow := new(MockUoW)
	routingService := new(MockRoutingService)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", mock.Anything, booked.TrackingID()).Return(booked, nil).Once(),
		routingService.On("FetchRoutesForSpecification", mock.Anything, booked.RouteSpecification()).
			Return([]*cargo.Itinerary{itinerary}, nil).Once(),
		uow.On("HandlingEventRepository").Return(eventRepo).Once(),
		eventRepo.On("GetHistory", mock.Anything, booked.TrackingID()).
			Return(handling.HandlingHistory{}, nil).Once(),
		cargoRepo.On("Update", mock.Anything, booked).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewRouteCargoCommandHandler(factory, routingService)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.True(t, itinerary.IsEqual(booked.Itinerary()))
	assert.Equal(t, cargo.Routed, booked.Delivery().RoutingStatus())
	cargoRepo.AssertExpectations(t)
	eventRepo.AssertExpectations(t)
	routingService.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestRouteCargoCommandHandler_Handle_NoRouteFound(t *testing.T) {
	ctx := t.Context()
	booked := unroutedCargo(t)
	cmd, _ := commands.NewRouteCargoCommand(booked.TrackingID())

	cargoRepo := new(MockCargoRepository)
	uow := new(MockUoW)
	routingService := new(MockRoutingService)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("CargoRepository").Return(cargoRepo).Once(),
		cargoRepo.On("Get", mock.Anything, booked.TrackingID()).Return(booked, nil).Once(),
		routingService.On("FetchRoutesForSpecification", mock.Anything, booked.RouteSpecification()).
			Return([]*cargo.Itinerary{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCargoUoWFactory)
	factory.On("Create").Return(uow).Once()

	h, err := commands.NewRouteCargoCommandHandler(factory, routingService)
	require.NoError(t, err)
	require.ErrorIs(t, h.Handle(ctx, cmd), commands.ErrNoRouteFound)

	assert.Nil(t, booked.Itinerary())
	uow.AssertExpectations(t)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewRouteCargoCommandHandler_RequiresDependencies(t *testing.T) {
	_, err := commands.NewRouteCargoCommandHandler(nil, new(MockRoutingService))
	require.Error(t, err)

	_, err = commands.NewRouteCargoCommandHandler(new(MockCargoUoWFactory), nil)
	require.Error(t, err)
}

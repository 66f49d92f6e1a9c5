package cargorepo_test

import (
	"context"
	"testing"
	"time"

	"cargotracker/internal/adapters/out/postgres/cargorepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/core/domain/model/cargo"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/location"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(trackingID kernel.TrackingID, aggregate interface{}) {
	m.Called(trackingID, aggregate)
}

// CargoRepositoryIntegrationTestSuite provides integration tests for
// CargoRepository using PostgreSQL containers to verify persistence behavior.
type CargoRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *cargorepo.GormCargoRepository
	voyages    *voyagerepo.GormVoyageRepository
	tracker    *MockAggregateTracker
}

func (suite *CargoRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&cargorepo.CargoDTO{},
		&cargorepo.LegDTO{},
		&voyagerepo.VoyageDTO{},
		&voyagerepo.CarrierMovementDTO{},
	))
}

func (suite *CargoRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec(
		"TRUNCATE TABLE cargos, legs, voyages, carrier_movements",
	).Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = cargorepo.NewGormCargoRepository(suite.db, suite.tracker)
	suite.voyages = voyagerepo.NewGormVoyageRepository(suite.db)
}

func (suite *CargoRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CargoRepositoryIntegrationTestSuite) TestAdd_UnroutedCargo_Success() {
	ctx := context.Background()
	booked := suite.unroutedCargo()

	suite.tracker.On("TrackAggregate", booked.TrackingID(), booked).Once()

	suite.Require().NoError(suite.repository.Add(ctx, booked))
	suite.assertCargoCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_UnroutedCargo_RoundTrip() {
	ctx := context.Background()
	booked := suite.unroutedCargo()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, booked))

	loaded, err := suite.repository.Get(ctx, booked.TrackingID())
	suite.Require().NoError(err)

	suite.True(loaded.IsEqual(booked))
	suite.Nil(loaded.Itinerary())
	suite.Equal(cargo.NotRouted, loaded.Delivery().RoutingStatus())
	suite.Equal(cargo.NotReceived, loaded.Delivery().TransportStatus())
	suite.True(loaded.RouteSpecification().IsEqual(booked.RouteSpecification()))
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_RoutedCargo_RestoresItineraryAndSnapshot() {
	ctx := context.Background()
	routed := suite.routedCargo(ctx)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, routed))

	loaded, err := suite.repository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)

	suite.Require().NotNil(loaded.Itinerary())
	suite.True(loaded.Itinerary().IsEqual(routed.Itinerary()))
	suite.Equal(cargo.Routed, loaded.Delivery().RoutingStatus())
	suite.True(loaded.Delivery().IsEqual(routed.Delivery()))
	suite.Require().NotNil(loaded.Delivery().Eta())
	suite.True(loaded.Delivery().Eta().Equal(*routed.Delivery().Eta()))
}

func (suite *CargoRepositoryIntegrationTestSuite) TestGet_NonExistentCargo_ReturnsNotFoundError() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewTrackingID())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_AfterHandling_ReplacesSnapshot() {
	ctx := context.Background()
	routed := suite.routedCargo(ctx)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, routed))

	v100, err := suite.voyages.Get(ctx, "V100")
	suite.Require().NoError(err)

	received := suite.event(routed.TrackingID(), handling.Receive, suite.hongkong(), nil, suite.day(2009, 3, 1))
	loaded := suite.event(routed.TrackingID(), handling.Load, suite.hongkong(), v100, suite.day(2009, 3, 2))
	history, err := handling.NewHandlingHistory([]handling.HandlingEvent{received, loaded})
	suite.Require().NoError(err)
	suite.Require().NoError(routed.DeriveDeliveryProgress(history, time.Now().UTC()))

	suite.Require().NoError(suite.repository.Update(ctx, routed))

	persisted, err := suite.repository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)
	suite.Equal(cargo.OnboardCarrier, persisted.Delivery().TransportStatus())
	suite.Require().NotNil(persisted.Delivery().CurrentVoyage())
	suite.Equal(voyage.Number("V100"), persisted.Delivery().CurrentVoyage().Number())
	suite.Require().NotNil(persisted.Delivery().NextExpectedActivity())
	suite.Equal(handling.Unload, persisted.Delivery().NextExpectedActivity().EventType())
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_NewRoute_ReplacesLegs() {
	ctx := context.Background()
	routed := suite.routedCargo(ctx)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, routed))

	v200 := suite.addVoyage(ctx, "V200", suite.hongkong(), suite.tokyo(),
		suite.day(2009, 3, 4), suite.day(2009, 3, 7))
	leg, err := cargo.NewLeg(v200, suite.hongkong(), suite.tokyo(),
		suite.day(2009, 3, 4), suite.day(2009, 3, 7))
	suite.Require().NoError(err)
	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	suite.Require().NoError(err)
	suite.Require().NoError(routed.AssignToRoute(itinerary))

	suite.Require().NoError(suite.repository.Update(ctx, routed))

	persisted, err := suite.repository.Get(ctx, routed.TrackingID())
	suite.Require().NoError(err)
	suite.Require().NotNil(persisted.Itinerary())
	suite.Len(persisted.Itinerary().Legs(), 1)
	suite.True(persisted.Itinerary().IsEqual(itinerary))
}

func (suite *CargoRepositoryIntegrationTestSuite) TestUpdate_NonExistentCargo_ReturnsError() {
	ctx := context.Background()

	err := suite.repository.Update(ctx, suite.unroutedCargo())
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *CargoRepositoryIntegrationTestSuite) TestExists() {
	ctx := context.Background()
	booked := suite.unroutedCargo()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, booked))

	exists, err := suite.repository.Exists(ctx, booked.TrackingID())
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.Exists(ctx, kernel.NewTrackingID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *CargoRepositoryIntegrationTestSuite) day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (suite *CargoRepositoryIntegrationTestSuite) location(code, name string) location.Location {
	unLocode, err := kernel.NewUnLocode(code)
	suite.Require().NoError(err)
	loc, err := location.NewLocation(unLocode, name)
	suite.Require().NoError(err)
	return loc
}

func (suite *CargoRepositoryIntegrationTestSuite) hongkong() location.Location {
	return suite.location("CNHKG", "Hongkong")
}

func (suite *CargoRepositoryIntegrationTestSuite) stockholm() location.Location {
	return suite.location("SESTO", "Stockholm")
}

func (suite *CargoRepositoryIntegrationTestSuite) tokyo() location.Location {
	return suite.location("JNTKO", "Tokyo")
}

func (suite *CargoRepositoryIntegrationTestSuite) unroutedCargo() *cargo.Cargo {
	routeSpec, err := cargo.NewRouteSpecification(
		suite.hongkong(), suite.stockholm(), suite.day(2009, 3, 18),
	)
	suite.Require().NoError(err)
	booked, err := cargo.NewCargo(kernel.NewTrackingID(), routeSpec)
	suite.Require().NoError(err)
	return booked
}

// routedCargo books a cargo and assigns it a single leg itinerary on
// voyage V100, which is persisted so leg resolution works on load.
func (suite *CargoRepositoryIntegrationTestSuite) routedCargo(ctx context.Context) *cargo.Cargo {
	v100 := suite.addVoyage(ctx, "V100", suite.hongkong(), suite.stockholm(),
		suite.day(2009, 3, 2), suite.day(2009, 3, 9))

	leg, err := cargo.NewLeg(v100, suite.hongkong(), suite.stockholm(),
		suite.day(2009, 3, 2), suite.day(2009, 3, 9))
	suite.Require().NoError(err)
	itinerary, err := cargo.NewItinerary([]cargo.Leg{leg})
	suite.Require().NoError(err)

	routed := suite.unroutedCargo()
	suite.Require().NoError(routed.AssignToRoute(itinerary))
	suite.Require().NoError(routed.DeriveDeliveryProgress(handling.HandlingHistory{}, time.Now().UTC()))
	return routed
}

func (suite *CargoRepositoryIntegrationTestSuite) addVoyage(
	ctx context.Context,
	number string,
	from, to location.Location,
	departure, arrival time.Time,
) *voyage.Voyage {
	movement, err := voyage.NewCarrierMovement(from, to, departure, arrival)
	suite.Require().NoError(err)
	schedule, err := voyage.NewSchedule([]voyage.CarrierMovement{movement})
	suite.Require().NoError(err)
	v, err := voyage.NewVoyage(voyage.Number(number), schedule)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.voyages.Add(ctx, v))
	return v
}

func (suite *CargoRepositoryIntegrationTestSuite) event(
	trackingID kernel.TrackingID,
	eventType handling.Type,
	eventLocation location.Location,
	eventVoyage *voyage.Voyage,
	completion time.Time,
) handling.HandlingEvent {
	handlingEvent, err := handling.NewHandlingEvent(
		trackingID, eventType, eventLocation, eventVoyage, completion, completion.Add(10*time.Minute),
	)
	suite.Require().NoError(err)
	return handlingEvent
}

func (suite *CargoRepositoryIntegrationTestSuite) assertCargoCount(expected int) {
	var count int64
	suite.Require().NoError(suite.db.Model(&cargorepo.CargoDTO{}).Count(&count).Error)
	suite.Equal(int64(expected), count)
}

func TestCargoRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(CargoRepositoryIntegrationTestSuite))
}

package cmd

import (
	"log/slog"
	"os"
	"strings"

	"gorm.io/gorm"

	"cargotracker/internal/adapters/in/http"
	"cargotracker/internal/adapters/out/kafka"
	"cargotracker/internal/adapters/out/postgres"
	"cargotracker/internal/adapters/out/postgres/locationrepo"
	"cargotracker/internal/adapters/out/postgres/voyagerepo"
	"cargotracker/internal/adapters/out/routing"
	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	appEvents  *kafka.Publisher
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		appEvents:  kafka.NewPublisher(strings.Split(config.KafkaHost, ",")),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}
}

func (c *CompositionRoot) CreateBookCargoCommandHandler() commands.BookCargoCommandHandler {
	var f commands.BookingUoWFactory = FuncBookingUoWFactory(func() commands.BookingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewBookCargoCommandHandler(f)
}

func (c *CompositionRoot) CreateRouteCargoCommandHandler() (commands.RouteCargoCommandHandler, error) {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRouteCargoCommandHandler(f, c.CreateRoutingService())
}

func (c *CompositionRoot) CreateChangeDestinationCommandHandler() commands.ChangeDestinationCommandHandler {
	var f commands.ReroutingUoWFactory = FuncReroutingUoWFactory(func() commands.ReroutingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeDestinationCommandHandler(f)
}

func (c *CompositionRoot) CreateInspectCargoCommandHandler() (commands.InspectCargoCommandHandler, error) {
	var f commands.CargoUoWFactory = FuncCargoUoWFactory(func() commands.CargoUoW {
		return c.uowFactory.Create()
	})
	return commands.NewInspectCargoCommandHandler(f, c.appEvents)
}

func (c *CompositionRoot) CreateRegisterHandlingEventCommandHandler() (commands.RegisterHandlingEventCommandHandler, error) {
	inspector, err := c.CreateInspectCargoCommandHandler()
	if err != nil {
		return commands.RegisterHandlingEventCommandHandler{}, err
	}

	var f commands.HandlingUoWFactory = FuncHandlingUoWFactory(func() commands.HandlingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterHandlingEventCommandHandler(f, c.appEvents, &inspector)
}

func (c *CompositionRoot) CreateTrackCargoQueryHandler() queries.TrackCargoQueryHandler {
	return queries.NewTrackCargoQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnroutedCargosQueryHandler() queries.GetUnroutedCargosQueryHandler {
	return queries.NewGetUnroutedCargosQueryHandler(c.gormDB)
}

// CreateRoutingService builds the path finder client. Route candidates
// reference voyages and locations by code, so the client reads reference
// data outside any transaction.
func (c *CompositionRoot) CreateRoutingService() ports.RoutingService {
	return routing.NewClient(
		c.config.PathFinderURL,
		voyagerepo.NewGormVoyageRepository(c.gormDB),
		locationrepo.NewGormLocationRepository(c.gormDB),
	)
}

func (c *CompositionRoot) CreateApplicationEvents() ports.ApplicationEvents {
	return c.appEvents
}

func (c *CompositionRoot) CreateHTTPServer() (*http.Server, error) {
	routeCargoHandler, err := c.CreateRouteCargoCommandHandler()
	if err != nil {
		return nil, err
	}
	registerHandler, err := c.CreateRegisterHandlingEventCommandHandler()
	if err != nil {
		return nil, err
	}

	return http.NewServer(
		c.CreateBookCargoCommandHandler(),
		routeCargoHandler,
		c.CreateChangeDestinationCommandHandler(),
		registerHandler,
		c.CreateTrackCargoQueryHandler(),
		c.CreateGetUnroutedCargosQueryHandler(),
		c.appEvents,
	), nil
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	registerHandler, err := c.CreateRegisterHandlingEventCommandHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		registerHandler,
		c.appEvents,
		c.config.HandlingReportUploadDir,
		c.config.HandlingReportFailureDir,
		c.logger,
	), nil
}

// Close releases resources held by outbound adapters.
func (c *CompositionRoot) Close() error {
	return c.appEvents.Close()
}

type FuncBookingUoWFactory func() commands.BookingUoW

func (f FuncBookingUoWFactory) Create() commands.BookingUoW {
	return f()
}

type FuncCargoUoWFactory func() commands.CargoUoW

func (f FuncCargoUoWFactory) Create() commands.CargoUoW {
	return f()
}

type FuncReroutingUoWFactory func() commands.ReroutingUoW

func (f FuncReroutingUoWFactory) Create() commands.ReroutingUoW {
	return f()
}

type FuncHandlingUoWFactory func() commands.HandlingUoW

func (f FuncHandlingUoWFactory) Create() commands.HandlingUoW {
	return f()
}

// Package http exposes the booking, tracking and handling report
// operations over a JSON API.
package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cargotracker/internal/core/application/usecases/commands"
	"cargotracker/internal/core/application/usecases/queries"
	"cargotracker/internal/core/domain/model/handling"
	"cargotracker/internal/core/domain/model/kernel"
	"cargotracker/internal/core/domain/model/voyage"
	"cargotracker/internal/core/ports"
	"cargotracker/internal/pkg/errs"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	bookCargoHandler             commands.BookCargoCommandHandler
	routeCargoHandler            commands.RouteCargoCommandHandler
	changeDestinationHandler     commands.ChangeDestinationCommandHandler
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler

	// Query handlers
	trackCargoHandler        queries.TrackCargoQueryHandler
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler

	appEvents ports.ApplicationEvents
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	bookCargoHandler commands.BookCargoCommandHandler,
	routeCargoHandler commands.RouteCargoCommandHandler,
	changeDestinationHandler commands.ChangeDestinationCommandHandler,
	registerHandlingEventHandler commands.RegisterHandlingEventCommandHandler,
	trackCargoHandler queries.TrackCargoQueryHandler,
	getUnroutedCargosHandler queries.GetUnroutedCargosQueryHandler,
	appEvents ports.ApplicationEvents,
) *Server {
	return &Server{
		bookCargoHandler:             bookCargoHandler,
		routeCargoHandler:            routeCargoHandler,
		changeDestinationHandler:     changeDestinationHandler,
		registerHandlingEventHandler: registerHandlingEventHandler,
		trackCargoHandler:            trackCargoHandler,
		getUnroutedCargosHandler:     getUnroutedCargosHandler,
		appEvents:                    appEvents,
	}
}

// RegisterRoutes mounts the API on the given echo instance.
// The static "unrouted" segment is registered alongside the tracking id
// parameter; echo matches static routes first.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/cargos", s.BookCargo)
	api.GET("/cargos/unrouted", s.GetUnroutedCargos)
	api.GET("/cargos/:trackingId", s.TrackCargo)
	api.POST("/cargos/:trackingId/route", s.AssignRoute)
	api.POST("/cargos/:trackingId/destination", s.ChangeDestination)
	api.POST("/handling-reports", s.SubmitHandlingReport)
}

// BookCargo handles POST /api/v1/cargos - books a new cargo and returns
// its generated tracking id.
func (s *Server) BookCargo(ctx echo.Context) error {
	var request BookCargoRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	origin, err := kernel.NewUnLocode(request.Origin)
	if err != nil {
		return badRequest(ctx, err)
	}
	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	trackingID := kernel.NewTrackingID()
	cmd, err := commands.NewBookCargoCommand(trackingID, origin, destination, request.ArrivalDeadline)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.bookCargoHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, BookCargoResponse{
		TrackingID: trackingID.String(),
	})
}

// AssignRoute handles POST /api/v1/cargos/:trackingId/route - requests
// route candidates and assigns the first satisfying itinerary.
func (s *Server) AssignRoute(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewRouteCargoCommand(trackingID)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.routeCargoHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, commands.ErrNoRouteFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "No route satisfies the cargo's specification",
			})
		}
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// ChangeDestination handles POST /api/v1/cargos/:trackingId/destination -
// reroutes a cargo to a new final destination.
func (s *Server) ChangeDestination(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	var request ChangeDestinationRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	destination, err := kernel.NewUnLocode(request.Destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	cmd, err := commands.NewChangeDestinationCommand(trackingID, destination)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.changeDestinationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusOK)
}

// SubmitHandlingReport handles POST /api/v1/handling-reports - registers
// one handling event reported by a port or carrier. The registration
// attempt is announced before any validation, so even rejected reports
// leave a trace.
func (s *Server) SubmitHandlingReport(ctx echo.Context) error {
	var request HandlingReportRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	registrationTime := time.Now()
	_ = s.appEvents.ReceivedHandlingEventRegistrationAttempt(
		ctx.Request().Context(),
		ports.HandlingEventRegistrationAttempt{
			RegistrationTime: registrationTime,
			CompletionTime:   request.CompletionTime,
			TrackingID:       request.TrackingID,
			VoyageNumber:     request.VoyageNumber,
			UnLocode:         request.UnLocode,
			EventType:        request.EventType,
		},
	)

	cmd, err := s.reportToCommand(registrationTime, request)
	if err != nil {
		return badRequest(ctx, err)
	}

	if handleErr := s.registerHandlingEventHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, handling.ErrCannotCreateHandlingEvent) {
			return badRequest(ctx, handleErr)
		}
		return commandError(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusCreated)
}

// TrackCargo handles GET /api/v1/cargos/:trackingId - returns the public
// tracking view of one cargo.
func (s *Server) TrackCargo(ctx echo.Context) error {
	trackingID, err := kernel.TrackingIDFromString(ctx.Param("trackingId"))
	if err != nil {
		return badRequest(ctx, err)
	}

	query, err := queries.NewTrackCargoQuery(trackingID)
	if err != nil {
		return badRequest(ctx, err)
	}

	view, err := s.trackCargoHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, Error{
				Code:    http.StatusNotFound,
				Message: "Unknown tracking id",
			})
		}
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to track cargo",
		})
	}

	return ctx.JSON(http.StatusOK, trackingViewToResponse(view))
}

// GetUnroutedCargos handles GET /api/v1/cargos/unrouted - lists cargos
// still waiting for a route assignment.
func (s *Server) GetUnroutedCargos(ctx echo.Context) error {
	query := queries.NewGetUnroutedCargosQuery()

	cargos, err := s.getUnroutedCargosHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve unrouted cargos",
		})
	}

	response := make([]UnroutedCargo, len(cargos))
	for i, c := range cargos {
		response[i] = UnroutedCargo{
			TrackingID:      c.TrackingID,
			Origin:          c.Origin,
			Destination:     c.Destination,
			ArrivalDeadline: c.ArrivalDeadline,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) reportToCommand(
	registrationTime time.Time,
	request HandlingReportRequest,
) (commands.RegisterHandlingEventCommand, error) {
	trackingID, err := kernel.TrackingIDFromString(request.TrackingID)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	unLocode, err := kernel.NewUnLocode(request.UnLocode)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	eventType, err := handling.TypeFromString(request.EventType)
	if err != nil {
		return commands.RegisterHandlingEventCommand{}, err
	}

	var voyageNumber *voyage.Number
	if request.VoyageNumber != "" {
		number := voyage.Number(request.VoyageNumber)
		voyageNumber = &number
	}

	return commands.NewRegisterHandlingEventCommand(
		registrationTime,
		request.CompletionTime,
		trackingID,
		voyageNumber,
		unLocode,
		eventType,
	)
}

func trackingViewToResponse(view queries.TrackCargoQueryResponse) TrackCargoResponse {
	response := TrackCargoResponse{
		TrackingID:          view.TrackingID,
		Origin:              view.Origin,
		OriginName:          view.OriginName,
		Destination:         view.Destination,
		DestinationName:     view.DestinationName,
		ArrivalDeadline:     view.ArrivalDeadline,
		TransportStatus:     view.TransportStatus,
		RoutingStatus:       view.RoutingStatus,
		LastKnownLocation:   view.LastKnownLocation,
		CurrentVoyageNumber: view.CurrentVoyageNumber,
		IsMisdirected:       view.IsMisdirected,
		Eta:                 view.Eta,
		HandlingEvents:      make([]TrackedEvent, len(view.HandlingEvents)),
	}

	if view.NextExpectedActivity != nil {
		response.NextExpectedActivity = &NextExpectedActivity{
			EventType:    view.NextExpectedActivity.EventType,
			UnLocode:     view.NextExpectedActivity.UnLocode,
			LocationName: view.NextExpectedActivity.LocationName,
			VoyageNumber: view.NextExpectedActivity.VoyageNumber,
		}
	}

	for i, event := range view.HandlingEvents {
		response.HandlingEvents[i] = TrackedEvent{
			EventType:      event.EventType,
			UnLocode:       event.UnLocode,
			LocationName:   event.LocationName,
			VoyageNumber:   event.VoyageNumber,
			CompletionTime: event.CompletionTime,
		}
	}

	return response
}

func badRequest(ctx echo.Context, err error) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: "Invalid request: " + err.Error(),
	})
}

func commandError(ctx echo.Context, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	}

	return ctx.JSON(http.StatusInternalServerError, Error{
		Code:    http.StatusInternalServerError,
		Message: "Failed to process request",
	})
}

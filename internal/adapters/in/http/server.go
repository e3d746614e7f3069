package http

import (
	"errors"
	"net/http"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/shipment"
	"tracking/internal/core/ports"
	"tracking/internal/generated/servers"
	"tracking/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler   commands.CreateShipmentCommandHandler
	addTrackingEventHandler commands.AddTrackingEventCommandHandler
	addLocationEventHandler commands.AddLocationEventCommandHandler
	cancelShipmentHandler   commands.CancelShipmentCommandHandler

	// Query handlers
	getShipmentHandler    queries.GetShipmentByTrackingCodeQueryHandler
	listShipmentsHandler  queries.ListShipmentsQueryHandler
	getAllBranchesHandler queries.GetAllBranchesQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	addTrackingEventHandler commands.AddTrackingEventCommandHandler,
	addLocationEventHandler commands.AddLocationEventCommandHandler,
	cancelShipmentHandler commands.CancelShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentByTrackingCodeQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
	getAllBranchesHandler queries.GetAllBranchesQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler:   createShipmentHandler,
		addTrackingEventHandler: addTrackingEventHandler,
		addLocationEventHandler: addLocationEventHandler,
		cancelShipmentHandler:   cancelShipmentHandler,
		getShipmentHandler:      getShipmentHandler,
		listShipmentsHandler:    listShipmentsHandler,
		getAllBranchesHandler:   getAllBranchesHandler,
	}
}

// CreateShipment handles POST /api/shipments - registers a new shipment and
// returns it with its generated tracking code.
func (s *Server) CreateShipment(ctx echo.Context) error {
	var newShipment servers.CreateShipmentRequest
	if err := ctx.Bind(&newShipment); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCreateShipmentCommand(
		newShipment.SenderName, newShipment.SenderPhone,
		newShipment.ReceiverName, newShipment.ReceiverPhone,
		newShipment.OriginBranchId, newShipment.DestinationBranchId,
		newShipment.AssignedDriverId,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid shipment data: " + err.Error(),
		})
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return errorResponse(ctx, err, "Failed to create shipment")
	}

	return ctx.JSON(http.StatusCreated, servers.ShipmentCreated{
		Id:           created.ID(),
		TrackingCode: created.TrackingCode().String(),
		SenderName:   created.SenderName(),
		ReceiverName: created.ReceiverName(),
		Status:       servers.ShipmentStatus(created.Status().String()),
		CreatedAt:    created.CreatedAt(),
	})
}

// GetShipmentByTrackingCode handles GET /api/shipments/{trackingCode} -
// retrieves a shipment together with its full tracking history.
func (s *Server) GetShipmentByTrackingCode(ctx echo.Context, trackingCode string) error {
	code, err := kernel.NewTrackingCode(trackingCode)
	if err != nil {
		// A code that does not match the format cannot resolve to any shipment.
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Shipment not found: " + trackingCode,
		})
	}

	return s.respondWithDetail(ctx, http.StatusOK, code)
}

// ListShipments handles GET /api/shipments - retrieves recent shipments,
// optionally filtered by status.
func (s *Server) ListShipments(ctx echo.Context, params servers.ListShipmentsParams) error {
	var statusFilter *shipment.Status
	if params.Status != nil {
		status, err := shipment.StatusFromString(string(*params.Status))
		if err != nil {
			return ctx.JSON(http.StatusBadRequest, servers.Error{
				Code:    http.StatusBadRequest,
				Message: "Invalid status filter: " + err.Error(),
			})
		}
		statusFilter = &status
	}

	query, err := queries.NewListShipmentsQuery(statusFilter)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid status filter: " + err.Error(),
		})
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve shipments")
	}

	response := make([]servers.ShipmentSummary, len(shipments))
	for i, item := range shipments {
		response[i] = servers.ShipmentSummary{
			Id:                    item.ID,
			TrackingCode:          item.TrackingCode,
			SenderName:            item.SenderName,
			ReceiverName:          item.ReceiverName,
			OriginBranchName:      item.OriginBranchName,
			DestinationBranchName: item.DestinationBranchName,
			AssignedDriverId:      item.AssignedDriverID,
			Status:                servers.ShipmentStatus(item.Status),
			CreatedAt:             item.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddTrackingEvent handles POST /api/shipments/{trackingCode}/events -
// appends a tracking event and overwrites the shipment status.
func (s *Server) AddTrackingEvent(ctx echo.Context, trackingCode string) error {
	code, err := kernel.NewTrackingCode(trackingCode)
	if err != nil {
		// A code that does not match the format cannot resolve to any shipment.
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Shipment not found: " + trackingCode,
		})
	}

	var newEvent servers.NewTrackingEvent
	if err := ctx.Bind(&newEvent); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := shipment.StatusFromString(string(newEvent.Status))
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event data: " + err.Error(),
		})
	}

	geolocation, err := bindGeolocation(newEvent.Latitude, newEvent.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event data: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddTrackingEventCommand(
		code, status, newEvent.Description, geolocation, newEvent.LocationText,
	)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid event data: " + err.Error(),
		})
	}

	if _, err = s.addTrackingEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to add tracking event")
	}

	return s.respondWithDetail(ctx, http.StatusOK, code)
}

// AddLocationEvent handles POST /api/shipments/{trackingCode}/location -
// records a driver position without changing the shipment status.
func (s *Server) AddLocationEvent(ctx echo.Context, trackingCode string) error {
	code, err := kernel.NewTrackingCode(trackingCode)
	if err != nil {
		// A code that does not match the format cannot resolve to any shipment.
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Shipment not found: " + trackingCode,
		})
	}

	var newLocation servers.NewLocationEvent
	if err := ctx.Bind(&newLocation); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	geolocation, err := kernel.NewGeolocation(newLocation.Latitude, newLocation.Longitude)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location data: " + err.Error(),
		})
	}

	cmd, err := commands.NewAddLocationEventCommand(code, geolocation, newLocation.LocationText)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid location data: " + err.Error(),
		})
	}

	if _, err = s.addLocationEventHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to add location event")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelShipment handles POST /api/shipments/{trackingCode}/cancel - cancels
// a shipment unless it has already been delivered or cancelled.
func (s *Server) CancelShipment(ctx echo.Context, trackingCode string) error {
	code, err := kernel.NewTrackingCode(trackingCode)
	if err != nil {
		// A code that does not match the format cannot resolve to any shipment.
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: "Shipment not found: " + trackingCode,
		})
	}

	// The cancellation body is optional.
	var cancelRequest servers.CancelShipmentRequest
	if err := ctx.Bind(&cancelRequest); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewCancelShipmentCommand(code, cancelRequest.Reason)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid cancellation data: " + err.Error(),
		})
	}

	if _, err = s.cancelShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err, "Failed to cancel shipment")
	}

	return s.respondWithDetail(ctx, http.StatusOK, code)
}

// GetBranches handles GET /api/branches - retrieves all branches.
func (s *Server) GetBranches(ctx echo.Context) error {
	query := queries.NewGetAllBranchesQuery()

	branches, err := s.getAllBranchesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve branches")
	}

	response := make([]servers.Branch, len(branches))
	for i, branch := range branches {
		response[i] = servers.Branch{
			Id:      branch.ID,
			Name:    branch.Name,
			Address: branch.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// respondWithDetail renders the full shipment detail for the given tracking
// code. Mutations go through this as well so their responses carry the branch
// names and the freshly ordered event history.
func (s *Server) respondWithDetail(ctx echo.Context, statusCode int, code kernel.TrackingCode) error {
	query, err := queries.NewGetShipmentByTrackingCodeQuery(code)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid tracking code: " + err.Error(),
		})
	}

	found, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return errorResponse(ctx, err, "Failed to retrieve shipment")
	}

	response := servers.Shipment{
		Id:                    found.ID,
		TrackingCode:          found.TrackingCode,
		SenderName:            found.SenderName,
		SenderPhone:           found.SenderPhone,
		ReceiverName:          found.ReceiverName,
		ReceiverPhone:         found.ReceiverPhone,
		OriginBranchId:        found.OriginBranchID,
		OriginBranchName:      found.OriginBranchName,
		DestinationBranchId:   found.DestinationBranchID,
		DestinationBranchName: found.DestinationBranchName,
		AssignedDriverId:      found.AssignedDriverID,
		Status:                servers.ShipmentStatus(found.Status),
		CreatedAt:             found.CreatedAt,
		Events:                make([]servers.TrackingEvent, len(found.Events)),
	}
	for i, event := range found.Events {
		response.Events[i] = servers.TrackingEvent{
			Id:           event.ID,
			Status:       servers.ShipmentStatus(event.Status),
			Description:  event.Description,
			Latitude:     event.Latitude,
			Longitude:    event.Longitude,
			LocationText: event.LocationText,
			CreatedAt:    event.CreatedAt,
		}
	}

	return ctx.JSON(statusCode, response)
}

// errorResponse translates use case errors into HTTP status codes. Unknown
// objects map to 404, rejected values to 400, tracking code conflicts to 409
// and anything else to a generic 500 with the given message.
func errorResponse(ctx echo.Context, err error, message string) error {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, servers.Error{
			Code:    http.StatusNotFound,
			Message: err.Error(),
		})
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		})
	case errors.Is(err, ports.ErrTrackingCodeConflict):
		return ctx.JSON(http.StatusConflict, servers.Error{
			Code:    http.StatusConflict,
			Message: err.Error(),
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: message,
		})
	}
}

// bindGeolocation builds an optional geolocation from a latitude and
// longitude pair. Providing only one of the two is rejected.
func bindGeolocation(latitude, longitude *float64) (*kernel.Geolocation, error) {
	if latitude == nil && longitude == nil {
		return nil, nil
	}
	if latitude == nil || longitude == nil {
		return nil, errs.NewValueIsRequiredError("latitude and longitude")
	}

	geolocation, err := kernel.NewGeolocation(*latitude, *longitude)
	if err != nil {
		return nil, err
	}

	return &geolocation, nil
}

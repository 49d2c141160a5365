package http

import (
	"errors"
	"net/http"
	"time"

	"shopfloor/internal/core/application/usecases/commands"
	"shopfloor/internal/core/application/usecases/queries"
	"shopfloor/internal/core/domain/model/kernel"
	"shopfloor/internal/generated/servers"
	"shopfloor/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createLocationHandler          commands.CreateLocationCommandHandler
	createOrderHandler             commands.CreateOrderCommandHandler
	detachOrderLocationHandler     commands.DetachOrderLocationCommandHandler
	enqueueAtLocationHandler       commands.EnqueueAtLocationCommandHandler
	finishWorkHandler              commands.FinishWorkCommandHandler
	pauseWorkHandler               commands.PauseWorkCommandHandler
	recomputeQueuesHandler         commands.RecomputeQueuesCommandHandler
	recordShipmentHandler          commands.RecordShipmentCommandHandler
	refreshLocationQueueHandler    commands.RefreshLocationQueueCommandHandler
	reorderLocationQueueHandler    commands.ReorderLocationQueueCommandHandler
	setGlobalPositionHandler       commands.SetGlobalPositionCommandHandler
	setRushHandler                 commands.SetRushCommandHandler
	startWorkHandler               commands.StartWorkCommandHandler
	unsetRushHandler               commands.UnsetRushCommandHandler
	updateCompletedQuantityHandler commands.UpdateCompletedQuantityCommandHandler

	// Query handlers
	getGlobalQueueHandler   queries.GetGlobalQueueQueryHandler
	getLocationQueueHandler queries.GetLocationQueueQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createLocationHandler commands.CreateLocationCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	detachOrderLocationHandler commands.DetachOrderLocationCommandHandler,
	enqueueAtLocationHandler commands.EnqueueAtLocationCommandHandler,
	finishWorkHandler commands.FinishWorkCommandHandler,
	pauseWorkHandler commands.PauseWorkCommandHandler,
	recomputeQueuesHandler commands.RecomputeQueuesCommandHandler,
	recordShipmentHandler commands.RecordShipmentCommandHandler,
	refreshLocationQueueHandler commands.RefreshLocationQueueCommandHandler,
	reorderLocationQueueHandler commands.ReorderLocationQueueCommandHandler,
	setGlobalPositionHandler commands.SetGlobalPositionCommandHandler,
	setRushHandler commands.SetRushCommandHandler,
	startWorkHandler commands.StartWorkCommandHandler,
	unsetRushHandler commands.UnsetRushCommandHandler,
	updateCompletedQuantityHandler commands.UpdateCompletedQuantityCommandHandler,
	getGlobalQueueHandler queries.GetGlobalQueueQueryHandler,
	getLocationQueueHandler queries.GetLocationQueueQueryHandler,
) *Server {
	return &Server{
		createLocationHandler:          createLocationHandler,
		createOrderHandler:             createOrderHandler,
		detachOrderLocationHandler:     detachOrderLocationHandler,
		enqueueAtLocationHandler:       enqueueAtLocationHandler,
		finishWorkHandler:              finishWorkHandler,
		pauseWorkHandler:               pauseWorkHandler,
		recomputeQueuesHandler:         recomputeQueuesHandler,
		recordShipmentHandler:          recordShipmentHandler,
		refreshLocationQueueHandler:    refreshLocationQueueHandler,
		reorderLocationQueueHandler:    reorderLocationQueueHandler,
		setGlobalPositionHandler:       setGlobalPositionHandler,
		setRushHandler:                 setRushHandler,
		startWorkHandler:               startWorkHandler,
		unsetRushHandler:               unsetRushHandler,
		updateCompletedQuantityHandler: updateCompletedQuantityHandler,
		getGlobalQueueHandler:          getGlobalQueueHandler,
		getLocationQueueHandler:        getLocationQueueHandler,
	}
}

// errorResponse translates use case failures into HTTP status codes.
// Classification runs over the sentinel errors of the errs package;
// anything unclassified becomes a 500.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsInvalid), errors.Is(err, errs.ErrValueIsRequired):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, servers.Error{
		Code:    int32(code),
		Message: err.Error(),
	})
}

// badRequest reports a malformed request before any use case runs.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// CreateOrder handles POST /api/v1/orders - registers a new production order.
// @Summary Create a production order
// @Description Registers an order with its piece count and initial routing locations
// @Tags orders
// @Accept json
// @Produce json
// @Param request body servers.NewOrder true "Order to create"
// @Success 201 {object} servers.Created "Order created"
// @Failure 400 {object} servers.Error "Invalid order data"
// @Failure 409 {object} servers.Error "Order already exists"
// @Router /orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	var newOrder servers.CreateOrderJSONRequestBody
	if err := ctx.Bind(&newOrder); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID := kernel.NewUUID()
	if newOrder.Id != nil {
		parsed, err := kernel.UUIDFromBytes((*newOrder.Id)[:])
		if err != nil {
			return badRequest(ctx, "Invalid order ID: "+err.Error())
		}
		orderID = parsed
	}

	locationIDs := make([]kernel.UUID, 0, len(newOrder.LocationIds))
	for _, raw := range newOrder.LocationIds {
		locationID, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return badRequest(ctx, "Invalid location ID: "+err.Error())
		}
		locationIDs = append(locationIDs, locationID)
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, newOrder.TotalQuantity, locationIDs)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	if handleErr := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: orderID.Bytes()})
}

// SetRush handles POST /api/v1/orders/{orderId}/rush - flags an order as rush.
// @Summary Flag an order as rush
// @Description Moves the order into the rush band of every queue
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.RushRequest false "Optional explicit rush timestamp"
// @Success 204 "Order flagged as rush"
// @Failure 400 {object} servers.Error "Invalid request"
// @Failure 404 {object} servers.Error "Order not found"
// @Router /orders/{orderId}/rush [post]
func (s *Server) SetRush(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var rushRequest servers.SetRushJSONRequestBody
	if err = ctx.Bind(&rushRequest); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	requestedAt := time.Now().UTC()
	if rushRequest.RequestedAt != nil {
		requestedAt = *rushRequest.RequestedAt
	}

	cmd, err := commands.NewSetRushCommand(orderID, requestedAt)
	if err != nil {
		return badRequest(ctx, "Invalid rush request: "+err.Error())
	}

	if handleErr := s.setRushHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UnsetRush handles DELETE /api/v1/orders/{orderId}/rush - clears the rush flag.
// @Summary Remove the rush flag from an order
// @Description Clears the rush flag; the order re-enters the regular band at its end
// @Tags orders
// @Produce json
// @Param orderId path string true "Order ID" format(uuid)
// @Success 204 "Rush flag removed"
// @Failure 404 {object} servers.Error "Order not found"
// @Router /orders/{orderId}/rush [delete]
func (s *Server) UnsetRush(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewUnsetRushCommand(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid rush request: "+err.Error())
	}

	if handleErr := s.unsetRushHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RecordShipment handles POST /api/v1/orders/{orderId}/shipment - records what left the factory.
// @Summary Record a shipment against an order
// @Description Records the absolute shipped quantity; a fully shipped order releases its queue slots
// @Tags orders
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.ShipmentReport true "Shipment to record"
// @Success 204 "Shipment recorded"
// @Failure 400 {object} servers.Error "Invalid shipment data"
// @Failure 404 {object} servers.Error "Order not found"
// @Failure 422 {object} servers.Error "Quantity out of range"
// @Router /orders/{orderId}/shipment [post]
func (s *Server) RecordShipment(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var report servers.RecordShipmentJSONRequestBody
	if err = ctx.Bind(&report); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRecordShipmentCommand(orderID, report.ShippedQuantity)
	if err != nil {
		return badRequest(ctx, "Invalid shipment data: "+err.Error())
	}

	if handleErr := s.recordShipmentHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetGlobalQueue handles GET /api/v1/queue - retrieves the ranked global queue.
// @Summary Read the global production queue
// @Description Returns every non-shipped order in global rank order
// @Tags queue
// @Produce json
// @Success 200 {array} servers.QueueSlot "Ranked global queue"
// @Failure 500 {object} servers.Error "Query failed"
// @Router /queue [get]
func (s *Server) GetGlobalQueue(ctx echo.Context) error {
	query := queries.NewGetGlobalQueueQuery()

	queue, err := s.getGlobalQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve the global queue",
		})
	}

	response := make([]servers.QueueSlot, len(queue))
	for i, slot := range queue {
		response[i] = servers.QueueSlot{
			OrderId:         slot.ID.Bytes(),
			Position:        slot.Position,
			Rush:            slot.Rush,
			RushSetAt:       slot.RushSetAt,
			TotalQuantity:   slot.TotalQuantity,
			ShippedQuantity: slot.ShippedQuantity,
			CreatedAt:       slot.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// RecomputeQueues handles POST /api/v1/queue/recompute - re-ranks every queue.
// @Summary Recompute all queues
// @Description Re-ranks the global queue and every location queue in one atomic sweep
// @Tags queue
// @Produce json
// @Success 204 "Queues recomputed"
// @Failure 500 {object} servers.Error "Recomputation failed"
// @Router /queue/recompute [post]
func (s *Server) RecomputeQueues(ctx echo.Context) error {
	cmd := commands.NewRecomputeQueuesCommand()

	if handleErr := s.recomputeQueuesHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SetGlobalPosition handles PUT /api/v1/queue/{orderId}/position - moves an order globally.
// @Summary Move an order within the global queue
// @Description Places the order at the requested rank, clamped to its priority band
// @Tags queue
// @Accept json
// @Produce json
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.PositionChange true "Requested rank"
// @Success 204 "Order moved"
// @Failure 400 {object} servers.Error "Invalid position"
// @Failure 404 {object} servers.Error "Order not found"
// @Router /queue/{orderId}/position [put]
func (s *Server) SetGlobalPosition(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var change servers.SetGlobalPositionJSONRequestBody
	if err = ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetGlobalPositionCommand(orderID, change.Position)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	if handleErr := s.setGlobalPositionHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateLocation handles POST /api/v1/locations - registers a routing location.
// @Summary Create a routing location
// @Description Adds a location to the routing catalog; the sequence key must be unique
// @Tags locations
// @Accept json
// @Produce json
// @Param request body servers.NewLocation true "Location to create"
// @Success 201 {object} servers.Created "Location created"
// @Failure 400 {object} servers.Error "Invalid location data"
// @Failure 409 {object} servers.Error "Location already exists"
// @Router /locations [post]
func (s *Server) CreateLocation(ctx echo.Context) error {
	var newLocation servers.CreateLocationJSONRequestBody
	if err := ctx.Bind(&newLocation); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	locationID := kernel.NewUUID()
	if newLocation.Id != nil {
		parsed, err := kernel.UUIDFromBytes((*newLocation.Id)[:])
		if err != nil {
			return badRequest(ctx, "Invalid location ID: "+err.Error())
		}
		locationID = parsed
	}

	isPrimary := newLocation.IsPrimary != nil && *newLocation.IsPrimary
	skipAutoQueue := newLocation.SkipAutoQueue != nil && *newLocation.SkipAutoQueue
	noCount := newLocation.NoCount != nil && *newLocation.NoCount

	countMultiplier := 1
	if newLocation.CountMultiplier != nil {
		countMultiplier = *newLocation.CountMultiplier
	}

	cmd, err := commands.NewCreateLocationCommand(
		locationID,
		newLocation.Name,
		newLocation.Sequence,
		isPrimary,
		skipAutoQueue,
		countMultiplier,
		noCount,
	)
	if err != nil {
		return badRequest(ctx, "Invalid location data: "+err.Error())
	}

	if handleErr := s.createLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.JSON(http.StatusCreated, servers.Created{Id: locationID.Bytes()})
}

// GetLocationQueue handles GET /api/v1/locations/{locationId}/queue - retrieves a location's queue.
// Auto-promotion runs before the read so primary locations never serve a stale queue.
// @Summary Read a location's work queue
// @Description Returns queued work in local rank order, refreshing the queue first
// @Tags locations
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Success 200 {array} servers.LocationQueueSlot "Ranked location queue"
// @Failure 404 {object} servers.Error "Location not found"
// @Router /locations/{locationId}/queue [get]
func (s *Server) GetLocationQueue(ctx echo.Context, locationId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	refreshCmd, err := commands.NewRefreshLocationQueueCommand(locationID)
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	if handleErr := s.refreshLocationQueueHandler.Handle(ctx.Request().Context(), refreshCmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	query, err := queries.NewGetLocationQueueQuery(locationID)
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	queue, err := s.getLocationQueueHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, servers.Error{
			Code:    http.StatusInternalServerError,
			Message: "Failed to retrieve the location queue",
		})
	}

	response := make([]servers.LocationQueueSlot, len(queue))
	for i, slot := range queue {
		response[i] = servers.LocationQueueSlot{
			OrderId:           slot.OrderID.Bytes(),
			Position:          slot.Position,
			Rush:              slot.Rush,
			TotalQuantity:     slot.TotalQuantity,
			CompletedQuantity: slot.CompletedQuantity,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// EnqueueAtLocation handles POST /api/v1/locations/{locationId}/queue - queues an order.
// @Summary Enqueue an order at a location
// @Description Places the order's assignment at the tail of the location queue
// @Tags locations
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param request body servers.EnqueueRequest true "Order to enqueue"
// @Success 204 "Order enqueued"
// @Failure 400 {object} servers.Error "Invalid request"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/queue [post]
func (s *Server) EnqueueAtLocation(ctx echo.Context, locationId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	var enqueue servers.EnqueueAtLocationJSONRequestBody
	if err = ctx.Bind(&enqueue); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(enqueue.OrderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewEnqueueAtLocationCommand(orderID, locationID)
	if err != nil {
		return badRequest(ctx, "Invalid enqueue request: "+err.Error())
	}

	if handleErr := s.enqueueAtLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ReorderLocationQueue handles PUT /api/v1/locations/{locationId}/queue/{orderId}/position.
// @Summary Move an order within a location queue
// @Description Places the queued assignment at the requested local rank; regular orders cannot overtake rush work
// @Tags locations
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.PositionChange true "Requested rank"
// @Success 204 "Order moved"
// @Failure 400 {object} servers.Error "Invalid position"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Failure 422 {object} servers.Error "Position ahead of rush work"
// @Router /locations/{locationId}/queue/{orderId}/position [put]
func (s *Server) ReorderLocationQueue(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var change servers.ReorderLocationQueueJSONRequestBody
	if err = ctx.Bind(&change); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewReorderLocationQueueCommand(locationID, orderID, change.Position)
	if err != nil {
		return badRequest(ctx, "Invalid position: "+err.Error())
	}

	if handleErr := s.reorderLocationQueueHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// StartWork handles POST /api/v1/locations/{locationId}/orders/{orderId}/start.
// @Summary Start work on an order at a location
// @Description Moves the assignment to in-progress, releases its queue slot and stages the next routing step
// @Tags work
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.WorkAction true "Acting operator"
// @Success 204 "Work started"
// @Failure 400 {object} servers.Error "Invalid request"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/orders/{orderId}/start [post]
func (s *Server) StartWork(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var action servers.StartWorkJSONRequestBody
	if err = ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewStartWorkCommand(orderID, locationID, action.ActorId)
	if err != nil {
		return badRequest(ctx, "Invalid work action: "+err.Error())
	}

	if handleErr := s.startWorkHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// FinishWork handles POST /api/v1/locations/{locationId}/orders/{orderId}/finish.
// @Summary Finish work on an order at a location
// @Description Completes the assignment and records the completed quantity; finishing completed work is an idempotent success
// @Tags work
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.FinishReport true "Completion report"
// @Success 204 "Work finished"
// @Failure 400 {object} servers.Error "Invalid report"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/orders/{orderId}/finish [post]
func (s *Server) FinishWork(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var report servers.FinishWorkJSONRequestBody
	if err = ctx.Bind(&report); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewFinishWorkCommand(orderID, locationID, report.CompletedQuantity, report.ActorId)
	if err != nil {
		return badRequest(ctx, "Invalid completion report: "+err.Error())
	}

	if handleErr := s.finishWorkHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// PauseWork handles POST /api/v1/locations/{locationId}/orders/{orderId}/pause.
// @Summary Pause work on an order at a location
// @Description Interrupts in-progress work; queue positions stay untouched
// @Tags work
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.WorkAction true "Acting operator"
// @Success 204 "Work paused"
// @Failure 400 {object} servers.Error "Invalid request"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/orders/{orderId}/pause [post]
func (s *Server) PauseWork(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var action servers.PauseWorkJSONRequestBody
	if err = ctx.Bind(&action); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewPauseWorkCommand(orderID, locationID, action.ActorId)
	if err != nil {
		return badRequest(ctx, "Invalid work action: "+err.Error())
	}

	if handleErr := s.pauseWorkHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateCompletedQuantity handles PUT /api/v1/locations/{locationId}/orders/{orderId}/quantity.
// @Summary Update the completed quantity of an assignment
// @Description Corrects the completed quantity without a state transition
// @Tags work
// @Accept json
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Param request body servers.QuantityUpdate true "Corrected quantity"
// @Success 204 "Quantity updated"
// @Failure 400 {object} servers.Error "Invalid quantity"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/orders/{orderId}/quantity [put]
func (s *Server) UpdateCompletedQuantity(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	var update servers.UpdateCompletedQuantityJSONRequestBody
	if err = ctx.Bind(&update); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateCompletedQuantityCommand(orderID, locationID, update.CompletedQuantity, update.ActorId)
	if err != nil {
		return badRequest(ctx, "Invalid quantity update: "+err.Error())
	}

	if handleErr := s.updateCompletedQuantityHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DetachOrderLocation handles DELETE /api/v1/locations/{locationId}/orders/{orderId}.
// @Summary Detach an order from a location
// @Description Removes the assignment row and renumbers the remaining queue
// @Tags work
// @Produce json
// @Param locationId path string true "Location ID" format(uuid)
// @Param orderId path string true "Order ID" format(uuid)
// @Success 204 "Assignment removed"
// @Failure 404 {object} servers.Error "Assignment not found"
// @Router /locations/{locationId}/orders/{orderId} [delete]
func (s *Server) DetachOrderLocation(ctx echo.Context, locationId openapi_types.UUID, orderId openapi_types.UUID) error {
	locationID, err := kernel.UUIDFromBytes(locationId[:])
	if err != nil {
		return badRequest(ctx, "Invalid location ID: "+err.Error())
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return badRequest(ctx, "Invalid order ID: "+err.Error())
	}

	cmd, err := commands.NewDetachOrderLocationCommand(orderID, locationID)
	if err != nil {
		return badRequest(ctx, "Invalid detach request: "+err.Error())
	}

	if handleErr := s.detachOrderLocationHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return errorResponse(ctx, handleErr)
	}

	return ctx.NoContent(http.StatusNoContent)
}

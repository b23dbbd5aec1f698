// Package http exposes the order, inventory and delivery use cases over a
// JSON API. Handlers translate transport concerns only: parsing, the caller's
// identity and mapping domain errors onto status codes. All business rules
// live in the use case layer.
package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/commands"
	"github.com/aryan26102004/Bill-Genius/internal/core/application/usecases/queries"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/actor"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/delivery"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/kernel"
	"github.com/aryan26102004/Bill-Genius/internal/core/domain/model/order"
	"github.com/aryan26102004/Bill-Genius/internal/core/ports"
	"github.com/aryan26102004/Bill-Genius/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Caller identity headers. A gateway in front of this service authenticates
// the request and forwards the verified identity.
const (
	headerActorID   = "X-Actor-Id"
	headerActorRole = "X-Actor-Role"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createOrderHandler         commands.CreateOrderCommandHandler
	cancelOrderHandler         commands.CancelOrderCommandHandler
	setOrderStatusHandler      commands.SetOrderStatusCommandHandler
	assignDriverHandler        commands.AssignDriverCommandHandler
	updateDeliveryHandler      commands.UpdateDeliveryStatusCommandHandler
	confirmDeliveryHandler     commands.ConfirmDeliveryCommandHandler
	createProductHandler       commands.CreateProductCommandHandler
	createDriverHandler        commands.CreateDriverCommandHandler
	getOrderByTrackingHandler  queries.GetOrderByTrackingQueryHandler
	getAllOrdersHandler        queries.GetAllOrdersQueryHandler
	getCustomerOrdersHandler   queries.GetCustomerOrdersQueryHandler
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler
	getInventoryHandler        queries.GetInventoryQueryHandler
	events                     ports.EventSource
}

func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	setOrderStatusHandler commands.SetOrderStatusCommandHandler,
	assignDriverHandler commands.AssignDriverCommandHandler,
	updateDeliveryHandler commands.UpdateDeliveryStatusCommandHandler,
	confirmDeliveryHandler commands.ConfirmDeliveryCommandHandler,
	createProductHandler commands.CreateProductCommandHandler,
	createDriverHandler commands.CreateDriverCommandHandler,
	getOrderByTrackingHandler queries.GetOrderByTrackingQueryHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getCustomerOrdersHandler queries.GetCustomerOrdersQueryHandler,
	getDriverDeliveriesHandler queries.GetDriverDeliveriesQueryHandler,
	getInventoryHandler queries.GetInventoryQueryHandler,
	events ports.EventSource,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		cancelOrderHandler:         cancelOrderHandler,
		setOrderStatusHandler:      setOrderStatusHandler,
		assignDriverHandler:        assignDriverHandler,
		updateDeliveryHandler:      updateDeliveryHandler,
		confirmDeliveryHandler:     confirmDeliveryHandler,
		createProductHandler:       createProductHandler,
		createDriverHandler:        createDriverHandler,
		getOrderByTrackingHandler:  getOrderByTrackingHandler,
		getAllOrdersHandler:        getAllOrdersHandler,
		getCustomerOrdersHandler:   getCustomerOrdersHandler,
		getDriverDeliveriesHandler: getDriverDeliveriesHandler,
		getInventoryHandler:        getInventoryHandler,
		events:                     events,
	}
}

// RegisterRoutes mounts all endpoints under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	v1 := e.Group("/api/v1")

	v1.POST("/orders", s.CreateOrder)
	v1.GET("/orders", s.GetOrders)
	v1.GET("/orders/my", s.GetMyOrders)
	v1.GET("/orders/track/:trackingId", s.TrackOrder)
	v1.PUT("/orders/:id/status", s.SetOrderStatus)
	v1.PUT("/orders/:id/cancel", s.CancelOrder)
	v1.PUT("/orders/:id/assign-driver", s.AssignDriver)
	v1.PUT("/orders/:id/delivery-status", s.UpdateDeliveryStatus)
	v1.POST("/orders/:id/confirm-delivery", s.ConfirmDelivery)

	v1.GET("/driver/deliveries", s.GetDriverDeliveries)

	v1.GET("/inventory", s.GetInventory)
	v1.POST("/inventory", s.CreateProduct)

	v1.POST("/drivers", s.CreateDriver)

	v1.GET("/events/:room", s.StreamEvents)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ackResponse struct {
	Message string `json:"message"`
}

// writeError maps domain errors onto HTTP status codes. Rejected state
// transitions and failed refunds read as bad requests, the same as
// validation errors. Unknown errors are reported as 500 without leaking
// internals.
func writeError(ctx echo.Context, err error) error {
	var forbidden *actor.ForbiddenError

	var code int
	switch {
	case errors.As(err, &forbidden):
		code = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrConflict),
		errors.Is(err, errs.ErrExternalFailure),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	default:
		return ctx.JSON(http.StatusInternalServerError, errorResponse{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}

	return ctx.JSON(code, errorResponse{Code: code, Message: err.Error()})
}

// requireActor reads the caller's identity from the gateway headers.
func requireActor(ctx echo.Context) (actor.Actor, error) {
	id, err := kernel.UUIDFromString(ctx.Request().Header.Get(headerActorID))
	if err != nil {
		return actor.Actor{}, errs.NewValueIsRequiredErrorWithCause("X-Actor-Id", err)
	}

	role, err := actor.RoleFromString(ctx.Request().Header.Get(headerActorRole))
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(id, role)
}

func pathOrderID(ctx echo.Context) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidError("orderId")
	}
	return id, nil
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

type orderLineRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type createOrderRequest struct {
	Items           []orderLineRequest `json:"items"`
	TotalAmount     decimal.Decimal    `json:"totalAmount"`
	ShippingAddress string             `json:"shippingAddress"`
	PaymentMode     string             `json:"paymentMode"`
}

type createOrderResponse struct {
	ID            string          `json:"id"`
	TrackingID    string          `json:"trackingId"`
	Status        string          `json:"status"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	PaymentStatus string          `json:"paymentStatus"`
	QRCodePayload string          `json:"qrCodePayload"`
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	lines := make([]commands.OrderLine, 0, len(req.Items))
	for _, item := range req.Items {
		productID, pErr := kernel.UUIDFromString(item.ProductID)
		if pErr != nil {
			return writeError(ctx, errs.NewValueIsInvalidError("productId"))
		}
		lines = append(lines, commands.OrderLine{ProductID: productID, Quantity: item.Quantity})
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), requester.ID, lines,
		req.TotalAmount, req.ShippingAddress, order.PaymentMode(req.PaymentMode))
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, createOrderResponse{
		ID:            created.ID().String(),
		TrackingID:    created.TrackingID(),
		Status:        created.Status().String(),
		TotalAmount:   created.TotalAmount(),
		PaymentStatus: string(created.PaymentStatus()),
		QRCodePayload: created.QRCodePayload(),
	})
}

// GetOrders handles GET /api/v1/orders, the back office listing.
func (s *Server) GetOrders(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !requester.Is(actor.RoleAdmin, actor.RoleWarehouse) {
		return writeError(ctx, actor.NewForbiddenError(requester.Role, "list all orders"))
	}

	orders, err := s.getAllOrdersHandler.Handle(
		ctx.Request().Context(), queries.NewGetAllOrdersQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// GetMyOrders handles GET /api/v1/orders/my, the caller's own order history.
func (s *Server) GetMyOrders(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetCustomerOrdersQuery(requester.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	orders, err := s.getCustomerOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orders)
}

// TrackOrder handles GET /api/v1/orders/track/:trackingId. No identity is
// required: the tracking identifier is the capability.
func (s *Server) TrackOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderByTrackingQuery(ctx.Param("trackingId"))
	if err != nil {
		return writeError(ctx, err)
	}

	tracked, err := s.getOrderByTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, tracked)
}

type setOrderStatusRequest struct {
	Status string `json:"status"`
}

type orderStatusResponse struct {
	ID         string `json:"id"`
	TrackingID string `json:"trackingId"`
	Status     string `json:"status"`
}

// SetOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) SetOrderStatus(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req setOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := order.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSetOrderStatusCommand(requester, orderID, status)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.setOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderStatusResponse{
		ID:         updated.ID().String(),
		TrackingID: updated.TrackingID(),
		Status:     updated.Status().String(),
	})
}

// CancelOrder handles PUT /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(requester, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackResponse{Message: "Order cancelled"})
}

type assignDriverRequest struct {
	DriverID string `json:"driverId"`
}

// AssignDriver handles PUT /api/v1/orders/:id/assign-driver.
func (s *Server) AssignDriver(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req assignDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID, err := kernel.UUIDFromString(req.DriverID)
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidError("driverId"))
	}

	cmd, err := commands.NewAssignDriverCommand(requester, orderID, driverID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.assignDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackResponse{Message: "Driver assigned"})
}

type updateDeliveryStatusRequest struct {
	Status           string `json:"status"`
	Location         string `json:"location"`
	ConfirmationCode string `json:"confirmationCode"`
}

// UpdateDeliveryStatus handles PUT /api/v1/orders/:id/delivery-status.
func (s *Server) UpdateDeliveryStatus(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req updateDeliveryStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	status, err := delivery.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateDeliveryStatusCommand(requester, orderID,
		status, req.Location, req.ConfirmationCode)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updateDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackResponse{Message: "Delivery status updated"})
}

type confirmDeliveryRequest struct {
	Code string `json:"code"`
}

// ConfirmDelivery handles POST /api/v1/orders/:id/confirm-delivery.
func (s *Server) ConfirmDelivery(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := pathOrderID(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req confirmDeliveryRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(requester, orderID, req.Code)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.confirmDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ackResponse{Message: "Delivery confirmed"})
}

// GetDriverDeliveries handles GET /api/v1/driver/deliveries, the caller's
// assigned delivery run.
func (s *Server) GetDriverDeliveries(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !requester.Is(actor.RoleDriver) {
		return writeError(ctx, actor.NewForbiddenError(requester.Role, "list driver deliveries"))
	}

	query, err := queries.NewGetDriverDeliveriesQuery(requester.ID)
	if err != nil {
		return writeError(ctx, err)
	}

	deliveries, err := s.getDriverDeliveriesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliveries)
}

// GetInventory handles GET /api/v1/inventory. Pass lowStock=true to list only
// products at or below their threshold.
func (s *Server) GetInventory(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}
	if !requester.Is(actor.RoleAdmin, actor.RoleWarehouse) {
		return writeError(ctx, actor.NewForbiddenError(requester.Role, "view inventory"))
	}

	query := queries.NewGetInventoryQuery(ctx.QueryParam("lowStock") == "true")

	inventory, err := s.getInventoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, inventory)
}

type createProductRequest struct {
	Name              string          `json:"name"`
	Price             decimal.Decimal `json:"price"`
	Stock             int             `json:"stock"`
	LowStockThreshold int             `json:"lowStockThreshold"`
}

// CreateProduct handles POST /api/v1/inventory.
func (s *Server) CreateProduct(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createProductRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	productID := kernel.NewUUID()
	cmd, err := commands.NewCreateProductCommand(requester, productID,
		req.Name, req.Price, req.Stock, req.LowStockThreshold)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createProductHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": productID.String()})
}

type createDriverRequest struct {
	Name string `json:"name"`
}

// CreateDriver handles POST /api/v1/drivers.
func (s *Server) CreateDriver(ctx echo.Context) error {
	requester, err := requireActor(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req createDriverRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, errorResponse{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	driverID := kernel.NewUUID()
	cmd, err := commands.NewCreateDriverCommand(requester, driverID, req.Name)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createDriverHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": driverID.String()})
}

// StreamEvents handles GET /api/v1/events/:room as a server-sent event
// stream. Room is a tracking identifier, or "broadcast" for all orders.
// Delivery is at most once: events published while the client is slow or
// disconnected are not replayed.
func (s *Server) StreamEvents(ctx echo.Context) error {
	room := ctx.Param("room")
	if room == "" {
		return writeError(ctx, errs.NewValueIsRequiredError("room"))
	}

	events, cancel := s.events.Subscribe(room)
	defer cancel()

	resp := ctx.Response()
	resp.Header().Set(echo.HeaderContentType, "text/event-stream")
	resp.Header().Set(echo.HeaderCacheControl, "no-cache")
	resp.Header().Set(echo.HeaderConnection, "keep-alive")
	resp.WriteHeader(http.StatusOK)
	resp.Flush()

	for {
		select {
		case <-ctx.Request().Context().Done():
			return nil
		case event, ok := <-events:
			if !ok {
				return nil
			}
			if err := writeSSE(ctx, event); err != nil {
				return nil
			}
		}
	}
}

func writeSSE(ctx echo.Context, event ports.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(ctx.Response(), "event: %s\ndata: %s\n\n", event.Name, payload); err != nil {
		return err
	}
	ctx.Response().Flush()

	return nil
}

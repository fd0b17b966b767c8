// Package http exposes the application use cases as a JSON API built
// on echo. Requests are authenticated with a bearer JWT; the resulting
// actor is passed into every command and query so authorization happens
// in the core, not here.
package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/pkg/errs"
)

// Server wires HTTP routes to command and query handlers.
type Server struct {
	createOrderHandler       commands.CreateOrderCommandHandler
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler
	assignCourierHandler     commands.AssignCourierCommandHandler
	acceptDeliveryHandler    commands.AcceptDeliveryCommandHandler
	rejectDeliveryHandler    commands.RejectDeliveryCommandHandler
	rateOrderHandler         commands.RateOrderCommandHandler
	processPaymentHandler    commands.ProcessPaymentCommandHandler

	getOrdersHandler  queries.GetOrdersQueryHandler
	getOrderHandler   queries.GetOrderQueryHandler
	getPaymentHandler queries.GetPaymentQueryHandler
}

// NewServer creates an HTTP server over the given use case handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateOrderStatusHandler commands.UpdateOrderStatusCommandHandler,
	assignCourierHandler commands.AssignCourierCommandHandler,
	acceptDeliveryHandler commands.AcceptDeliveryCommandHandler,
	rejectDeliveryHandler commands.RejectDeliveryCommandHandler,
	rateOrderHandler commands.RateOrderCommandHandler,
	processPaymentHandler commands.ProcessPaymentCommandHandler,
	getOrdersHandler queries.GetOrdersQueryHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getPaymentHandler queries.GetPaymentQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:       createOrderHandler,
		updateOrderStatusHandler: updateOrderStatusHandler,
		assignCourierHandler:     assignCourierHandler,
		acceptDeliveryHandler:    acceptDeliveryHandler,
		rejectDeliveryHandler:    rejectDeliveryHandler,
		rateOrderHandler:         rateOrderHandler,
		processPaymentHandler:    processPaymentHandler,
		getOrdersHandler:         getOrdersHandler,
		getOrderHandler:          getOrderHandler,
		getPaymentHandler:        getPaymentHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1. Every route except the
// health check goes through the JWT middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.GetHealth)

	api := e.Group("/api/v1", auth)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id/status", s.UpdateOrderStatus)
	api.POST("/orders/:id/assignment", s.AssignCourier)
	api.POST("/orders/:id/assignment/accept", s.AcceptDelivery)
	api.POST("/orders/:id/assignment/reject", s.RejectDelivery)
	api.POST("/orders/:id/rating", s.RateOrder)
	api.POST("/payments", s.ProcessPayment)
	api.GET("/payments", s.GetPayment)
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "OK"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	customerID, err := parseUUID(request.CustomerID, "customer_id")
	if err != nil {
		return respondError(ctx, err)
	}
	restaurantID, err := parseUUID(request.RestaurantID, "restaurant_id")
	if err != nil {
		return respondError(ctx, err)
	}
	addressID, err := parseUUID(request.DeliveryAddressID, "delivery_address_id")
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]commands.OrderItem, 0, len(request.Items))
	for _, item := range request.Items {
		menuItemID, itemErr := parseUUID(item.MenuItemID, "menu_item_id")
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		orderItem, itemErr := commands.NewOrderItem(menuItemID, item.Quantity)
		if itemErr != nil {
			return respondError(ctx, itemErr)
		}
		items = append(items, orderItem)
	}

	cmd, err := commands.NewCreateOrderCommand(actor, kernel.NewUUID(), customerID, restaurantID, addressID, items)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(anOrder))
}

// GetOrders handles GET /api/v1/orders with an optional status filter.
func (s *Server) GetOrders(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	var statusFilter *order.Status
	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := order.StatusFromString(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		statusFilter = &status
	}

	query, err := queries.NewGetOrdersQuery(actor, statusFilter)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.getOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, 0, len(orders))
	for _, model := range orders {
		response = append(response, OrderSummaryResponse{
			ID:           model.ID.String(),
			CustomerID:   model.CustomerID.String(),
			RestaurantID: model.RestaurantID.String(),
			CourierID:    uuidToString(model.CourierID),
			Status:       model.Status,
			TotalAmount:  model.TotalAmount,
			DeliveryFee:  model.DeliveryFee,
			Rating:       model.Rating,
			CreatedAt:    model.CreatedAt,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderReadModelToResponse(model))
}

// UpdateOrderStatus handles PUT /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request UpdateOrderStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	status, err := order.StatusFromString(request.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(actor, orderID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.updateOrderStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(anOrder))
}

// AssignCourier handles POST /api/v1/orders/:id/assignment.
func (s *Server) AssignCourier(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request AssignCourierRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	courierID, err := parseUUID(request.CourierID, "courier_id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignCourierCommand(actor, orderID, courierID)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.assignCourierHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(anOrder))
}

// AcceptDelivery handles POST /api/v1/orders/:id/assignment/accept.
func (s *Server) AcceptDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAcceptDeliveryCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.acceptDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(anOrder))
}

// RejectDelivery handles POST /api/v1/orders/:id/assignment/reject.
func (s *Server) RejectDelivery(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRejectDeliveryCommand(actor, orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.rejectDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(anOrder))
}

// RateOrder handles POST /api/v1/orders/:id/rating.
func (s *Server) RateOrder(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	orderID, err := parseUUID(ctx.Param("id"), "id")
	if err != nil {
		return respondError(ctx, err)
	}

	var request RateOrderRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewRateOrderCommand(actor, orderID, request.Rating)
	if err != nil {
		return respondError(ctx, err)
	}

	anOrder, err := s.rateOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(anOrder))
}

// ProcessPayment handles POST /api/v1/payments. A declined charge still
// produces a payment record; it is returned with 402 so the caller can
// see the failed attempt.
func (s *Server) ProcessPayment(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	var request ProcessPaymentRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	orderID, err := parseUUID(request.OrderID, "order_id")
	if err != nil {
		return respondError(ctx, err)
	}

	method, err := payment.MethodFromString(request.Method)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewProcessPaymentCommand(actor, kernel.NewUUID(), orderID, request.Amount, method, request.TransactionID)
	if err != nil {
		return respondError(ctx, err)
	}

	aPayment, err := s.processPaymentHandler.Handle(ctx.Request().Context(), cmd)
	if errors.Is(err, payment.ErrPaymentDeclined) && aPayment != nil {
		return ctx.JSON(http.StatusPaymentRequired, paymentToResponse(aPayment))
	}
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, paymentToResponse(aPayment))
}

// GetPayment handles GET /api/v1/payments, filtered by order_id or
// transaction_id.
func (s *Server) GetPayment(ctx echo.Context) error {
	actor, ok := actorFromContext(ctx)
	if !ok {
		return unauthorized(ctx, "authentication is required")
	}

	var orderID *kernel.UUID
	if raw := ctx.QueryParam("order_id"); raw != "" {
		parsed, err := parseUUID(raw, "order_id")
		if err != nil {
			return respondError(ctx, err)
		}
		orderID = &parsed
	}

	query, err := queries.NewGetPaymentQuery(actor, orderID, ctx.QueryParam("transaction_id"))
	if err != nil {
		return respondError(ctx, err)
	}

	model, err := s.getPaymentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PaymentResponse{
		ID:            model.ID.String(),
		OrderID:       model.OrderID.String(),
		Amount:        model.Amount,
		Method:        model.Method,
		TransactionID: model.TransactionID,
		Status:        model.Status,
		CreatedAt:     model.CreatedAt,
	})
}

func parseUUID(raw string, name string) (kernel.UUID, error) {
	id, err := kernel.UUIDFromString(raw)
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause(name, err)
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

package http

import (
	"time"

	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
)

// ErrorResponse is the uniform error body returned by the API.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderItemRequest is one position of an order creation request.
type OrderItemRequest struct {
	MenuItemID string `json:"menu_item_id"`
	Quantity   int    `json:"quantity"`
}

// CreateOrderRequest is the body of POST /orders.
type CreateOrderRequest struct {
	CustomerID        string             `json:"customer_id"`
	RestaurantID      string             `json:"restaurant_id"`
	DeliveryAddressID string             `json:"delivery_address_id"`
	Items             []OrderItemRequest `json:"items"`
}

// UpdateOrderStatusRequest is the body of PUT /orders/:id/status.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// AssignCourierRequest is the body of POST /orders/:id/assignment.
type AssignCourierRequest struct {
	CourierID string `json:"courier_id"`
}

// RateOrderRequest is the body of POST /orders/:id/rating.
type RateOrderRequest struct {
	Rating int `json:"rating"`
}

// ProcessPaymentRequest is the body of POST /payments.
type ProcessPaymentRequest struct {
	OrderID       string `json:"order_id"`
	Amount        int    `json:"amount"`
	Method        string `json:"method"`
	TransactionID string `json:"transaction_id"`
}

// LineItemResponse is one priced position of an order.
type LineItemResponse struct {
	ID           string `json:"id"`
	MenuItemID   string `json:"menu_item_id"`
	Quantity     int    `json:"quantity"`
	PriceAtOrder int    `json:"price_at_order"`
}

// OrderResponse is the order representation returned by the API.
type OrderResponse struct {
	ID                    string             `json:"id"`
	CustomerID            string             `json:"customer_id"`
	RestaurantID          string             `json:"restaurant_id"`
	DeliveryAddressID     string             `json:"delivery_address_id"`
	CourierID             *string            `json:"courier_id,omitempty"`
	Status                string             `json:"status"`
	TotalAmount           int                `json:"total_amount"`
	DeliveryFee           int                `json:"delivery_fee"`
	EstimatedDeliveryTime *time.Time         `json:"estimated_delivery_time,omitempty"`
	CompletedTime         *time.Time         `json:"completed_time,omitempty"`
	Rating                *int               `json:"rating,omitempty"`
	CreatedAt             time.Time          `json:"created_at"`
	Items                 []LineItemResponse `json:"items,omitempty"`
}

// OrderSummaryResponse is the order list representation without items.
type OrderSummaryResponse struct {
	ID           string    `json:"id"`
	CustomerID   string    `json:"customer_id"`
	RestaurantID string    `json:"restaurant_id"`
	CourierID    *string   `json:"courier_id,omitempty"`
	Status       string    `json:"status"`
	TotalAmount  int       `json:"total_amount"`
	DeliveryFee  int       `json:"delivery_fee"`
	Rating       *int      `json:"rating,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// PaymentResponse is the payment representation returned by the API.
type PaymentResponse struct {
	ID            string    `json:"id"`
	OrderID       string    `json:"order_id"`
	Amount        int       `json:"amount"`
	Method        string    `json:"method"`
	TransactionID string    `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

func orderToResponse(anOrder *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(anOrder.Items()))
	for _, item := range anOrder.Items() {
		items = append(items, LineItemResponse{
			ID:           item.ID().String(),
			MenuItemID:   item.MenuItemID().String(),
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder(),
		})
	}

	return OrderResponse{
		ID:                    anOrder.ID().String(),
		CustomerID:            anOrder.CustomerID().String(),
		RestaurantID:          anOrder.RestaurantID().String(),
		DeliveryAddressID:     anOrder.DeliveryAddressID().String(),
		CourierID:             uuidToString(anOrder.Courier()),
		Status:                anOrder.Status().String(),
		TotalAmount:           anOrder.TotalAmount(),
		DeliveryFee:           anOrder.DeliveryFee(),
		EstimatedDeliveryTime: anOrder.EstimatedDeliveryTime(),
		CompletedTime:         anOrder.CompletedTime(),
		Rating:                anOrder.Rating(),
		CreatedAt:             anOrder.CreatedAt(),
		Items:                 items,
	}
}

func orderReadModelToResponse(model *queries.GetOrderQueryResponse) OrderResponse {
	items := make([]LineItemResponse, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, LineItemResponse{
			ID:           item.ID.String(),
			MenuItemID:   item.MenuItemID.String(),
			Quantity:     item.Quantity,
			PriceAtOrder: item.PriceAtOrder,
		})
	}

	return OrderResponse{
		ID:                    model.ID.String(),
		CustomerID:            model.CustomerID.String(),
		RestaurantID:          model.RestaurantID.String(),
		DeliveryAddressID:     model.DeliveryAddressID.String(),
		CourierID:             uuidToString(model.CourierID),
		Status:                model.Status,
		TotalAmount:           model.TotalAmount,
		DeliveryFee:           model.DeliveryFee,
		EstimatedDeliveryTime: model.EstimatedDeliveryTime,
		CompletedTime:         model.CompletedTime,
		Rating:                model.Rating,
		CreatedAt:             model.CreatedAt,
		Items:                 items,
	}
}

func paymentToResponse(aPayment *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            aPayment.ID().String(),
		OrderID:       aPayment.OrderID().String(),
		Amount:        aPayment.Amount(),
		Method:        aPayment.Method().String(),
		TransactionID: aPayment.TransactionID(),
		Status:        aPayment.Status().String(),
		CreatedAt:     aPayment.CreatedAt(),
	}
}

func uuidToString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

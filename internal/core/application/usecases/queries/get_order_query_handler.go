package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// GetOrderQueryHandler retrieves a single order with its line items.
// The order row is joined with its restaurant so visibility can be
// decided in one read: admins, the ordering customer, the assigned
// courier and the restaurant owner may see the order.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order lookup.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.delivery_address_id,
			o.courier_id,
			o.status,
			o.total_amount,
			o.delivery_fee,
			o.estimated_delivery_time,
			o.completed_time,
			o.rating,
			o.created_at,
			r.owner_id
		FROM orders o
		JOIN restaurants r ON r.id = o.restaurant_id
		WHERE o.id = ?
	`
	row := h.db.WithContext(ctx).Raw(stmt, query.OrderID().Bytes()).Row()

	var response GetOrderQueryResponse
	var id, customerID, restaurantID, addressID, ownerID uuid.UUID
	var courierID uuid.NullUUID
	var createdAt time.Time

	err := row.Scan(
		&id,
		&customerID,
		&restaurantID,
		&addressID,
		&courierID,
		&response.Status,
		&response.TotalAmount,
		&response.DeliveryFee,
		&response.EstimatedDeliveryTime,
		&response.CompletedTime,
		&response.Rating,
		&createdAt,
		&ownerID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return nil, err
	}

	actor := query.Actor()
	actorID := actor.ID().Bytes()
	visible := actor.IsAdmin() ||
		customerID == actorID ||
		ownerID == actorID ||
		(courierID.Valid && courierID.UUID == actorID)
	if !visible {
		return nil, services.ErrPermissionDenied
	}

	if response.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return nil, err
	}
	if response.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return nil, err
	}
	if response.RestaurantID, err = kernel.UUIDFromBytes(restaurantID[:]); err != nil {
		return nil, err
	}
	if response.DeliveryAddressID, err = kernel.UUIDFromBytes(addressID[:]); err != nil {
		return nil, err
	}
	if courierID.Valid {
		converted, convErr := kernel.UUIDFromBytes(courierID.UUID[:])
		if convErr != nil {
			return nil, convErr
		}
		response.CourierID = &converted
	}
	response.CreatedAt = createdAt

	if response.Items, err = h.loadItems(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	return &response, nil
}

func (h GetOrderQueryHandler) loadItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderQueryLineItem, error) {
	stmt := `
		SELECT id, menu_item_id, quantity, price_at_order
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`
	rows, err := h.db.WithContext(ctx).Raw(stmt, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []GetOrderQueryLineItem
	for rows.Next() {
		var item GetOrderQueryLineItem
		var id, menuItemID uuid.UUID

		if err = rows.Scan(&id, &menuItemID, &item.Quantity, &item.PriceAtOrder); err != nil {
			return nil, err
		}
		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if item.MenuItemID, err = kernel.UUIDFromBytes(menuItemID[:]); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, rows.Err()
}

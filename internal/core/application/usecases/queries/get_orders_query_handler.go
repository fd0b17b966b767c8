package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/kernel"
)

// GetOrdersQueryHandler lists orders from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order list queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query to list orders visible to the actor.
// Results are sorted newest first.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := `
		SELECT
			o.id,
			o.customer_id,
			o.restaurant_id,
			o.courier_id,
			o.status,
			o.total_amount,
			o.delivery_fee,
			o.rating,
			o.created_at
		FROM orders o
	`
	args := make([]any, 0, 2)

	actor := query.Actor()
	switch actor.Role() {
	case account.RoleAdmin:
		stmt += ` WHERE TRUE`
	case account.RoleCourier:
		stmt += ` WHERE o.courier_id = ?`
		args = append(args, actor.ID().Bytes())
	case account.RoleRestaurantOwner:
		stmt += ` JOIN restaurants r ON r.id = o.restaurant_id WHERE r.owner_id = ?`
		args = append(args, actor.ID().Bytes())
	default:
		stmt += ` WHERE o.customer_id = ?`
		args = append(args, actor.ID().Bytes())
	}

	if status := query.Status(); status != nil {
		stmt += ` AND o.status = ?`
		args = append(args, status.String())
	}

	stmt += ` ORDER BY o.created_at DESC`

	rows, err := h.db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var response GetOrdersQueryResponse
		var id, customerID, restaurantID uuid.UUID
		var courierID uuid.NullUUID
		var createdAt time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&restaurantID,
			&courierID,
			&response.Status,
			&response.TotalAmount,
			&response.DeliveryFee,
			&response.Rating,
			&createdAt,
		)
		if err != nil {
			return nil, err
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
		if courierID.Valid {
			assignee, idErr := kernel.UUIDFromBytes(courierID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			response.CourierID = &assignee
		}
		response.CreatedAt = createdAt

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

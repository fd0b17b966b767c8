// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Line items are owned by the order and stored in a child table loaded
// together with it.
type OrderDTO struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;index"`
	RestaurantID      uuid.UUID  `gorm:"type:uuid;index"`
	DeliveryAddressID uuid.UUID  `gorm:"type:uuid"`
	CourierID         *uuid.UUID `gorm:"type:uuid;index"`

	Status      string `gorm:"type:varchar(16);index"`
	TotalAmount int
	DeliveryFee int

	EstimatedDeliveryTime *time.Time
	CompletedTime         *time.Time
	Rating                *int
	CreatedAt             time.Time

	Items []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents a single order position with its price snapshot.
// Position preserves the order the items were requested in; IDs are random
// UUIDs and carry no ordering.
type LineItemDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID      uuid.UUID `gorm:"type:uuid;index"`
	MenuItemID   uuid.UUID `gorm:"type:uuid"`
	Position     int
	Quantity     int
	PriceAtOrder int
}

// TableName specifies the database table name for order line items.
func (LineItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for position, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:           item.ID().Bytes(),
			OrderID:      aggregate.ID().Bytes(),
			MenuItemID:   item.MenuItemID().Bytes(),
			Position:     position,
			Quantity:     item.Quantity(),
			PriceAtOrder: item.PriceAtOrder(),
		})
	}

	return OrderDTO{
		ID:                    aggregate.ID().Bytes(),
		CustomerID:            aggregate.CustomerID().Bytes(),
		RestaurantID:          aggregate.RestaurantID().Bytes(),
		DeliveryAddressID:     aggregate.DeliveryAddressID().Bytes(),
		CourierID:             courierID,
		Status:                aggregate.Status().String(),
		TotalAmount:           aggregate.TotalAmount(),
		DeliveryFee:           aggregate.DeliveryFee(),
		EstimatedDeliveryTime: aggregate.EstimatedDeliveryTime(),
		CompletedTime:         aggregate.CompletedTime(),
		Rating:                aggregate.Rating(),
		CreatedAt:             aggregate.CreatedAt(),
		Items:                 items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	addressID, err := kernel.UUIDFromBytes(dto.DeliveryAddressID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, itemErr := kernel.UUIDFromBytes(itemDTO.ID[:])
		if itemErr != nil {
			return nil, itemErr
		}
		menuItemID, itemErr := kernel.UUIDFromBytes(itemDTO.MenuItemID[:])
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.RestoreLineItem(itemID, menuItemID, itemDTO.Quantity, itemDTO.PriceAtOrder)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		customerID,
		restaurantID,
		addressID,
		courierID,
		status,
		dto.DeliveryFee,
		dto.EstimatedDeliveryTime,
		dto.CompletedTime,
		dto.Rating,
		dto.CreatedAt,
		items,
	)
}

package commands

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/core/ports"
)

var (
	// ErrMenuItemUnavailable is returned when a requested menu item exists
	// but is currently not offered for ordering.
	ErrMenuItemUnavailable = errors.New("menu item is unavailable")

	// ErrMenuItemNotOnMenu is returned when a requested menu item belongs
	// to a different restaurant than the one the order is placed with.
	ErrMenuItemNotOnMenu = errors.New("menu item does not belong to the restaurant")

	// ErrAddressNotOwnedByCustomer is returned when the delivery address
	// is registered to a different user than the ordering customer.
	ErrAddressNotOwnedByCustomer = errors.New("delivery address does not belong to the customer")
)

// CreateOrderCommandHandler handles the business logic for order creation.
// Validates every referenced entity against the catalog, snapshots menu
// item prices into line items and persists the new order in Processing
// status.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogReader
	policy     services.AccessPolicy
	publisher  ports.OrderEventPublisher
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	catalog ports.CatalogReader,
	publisher ports.OrderEventPublisher,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
		policy:     services.NewAccessPolicy(),
		publisher:  publisher,
	}
}

// Handle processes the order creation command.
// The customer, restaurant, address and every menu item must exist; items
// must be on the restaurant's menu and available. Item prices are copied
// into the order so later catalog changes never affect it.
func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	if err := h.policy.CanCreateOrder(cmd.Actor(), cmd.CustomerID()); err != nil {
		return nil, err
	}

	if _, err := h.catalog.GetUser(ctx, cmd.CustomerID()); err != nil {
		return nil, err
	}

	if _, err := h.catalog.GetRestaurant(ctx, cmd.RestaurantID()); err != nil {
		return nil, err
	}

	address, err := h.catalog.GetAddress(ctx, cmd.DeliveryAddressID())
	if err != nil {
		return nil, err
	}
	if ownerID := address.UserID(); ownerID != nil && !ownerID.IsEqual(cmd.CustomerID()) {
		return nil, ErrAddressNotOwnedByCustomer
	}

	items := make([]*order.LineItem, 0, len(cmd.Items()))
	for _, requested := range cmd.Items() {
		menuItem, err := h.catalog.GetMenuItem(ctx, requested.MenuItemID())
		if err != nil {
			return nil, err
		}
		if !menuItem.IsSoldBy(cmd.RestaurantID()) {
			return nil, ErrMenuItemNotOnMenu
		}
		if !menuItem.IsAvailable() {
			return nil, ErrMenuItemUnavailable
		}

		lineItem, err := order.NewLineItem(kernel.NewUUID(), menuItem.ID(), requested.Quantity(), menuItem.Price())
		if err != nil {
			return nil, err
		}
		items = append(items, lineItem)
	}

	newOrder, err := order.NewOrder(cmd.OrderID(), cmd.CustomerID(), cmd.RestaurantID(), cmd.DeliveryAddressID(), items)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	// Best effort: the order is already committed.
	_ = h.publisher.Publish(ctx, ports.OrderEvent{
		EventType:  "order.created",
		OrderID:    newOrder.ID().String(),
		Status:     newOrder.Status().String(),
		OccurredAt: time.Now().UTC(),
	})

	return newOrder, nil
}

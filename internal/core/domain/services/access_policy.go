package services

import (
	"errors"

	"foodorder/internal/core/domain/model/account"
	"foodorder/internal/core/domain/model/catalog"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/order"
)

// ErrPermissionDenied is returned when an actor attempts an operation
// on a resource they have no rights to.
var ErrPermissionDenied = errors.New("permission denied")

// AccessPolicy is a domain service that decides whether an actor may
// perform an operation. Admins pass every check; other roles are limited
// to resources they own.
//
// The policy is a pure decision function: it never touches storage and
// never mutates its inputs.
type AccessPolicy struct{}

// NewAccessPolicy creates a new AccessPolicy instance.
func NewAccessPolicy() AccessPolicy {
	return AccessPolicy{}
}

// CanCreateOrder permits admins and customers placing an order for themselves.
func (p AccessPolicy) CanCreateOrder(actor account.Actor, customerID kernel.UUID) error {
	if actor.IsAdmin() {
		return nil
	}
	if actor.Role() == account.RoleCustomer && actor.ID().IsEqual(customerID) {
		return nil
	}
	return ErrPermissionDenied
}

// CanUpdateOrderStatus permits admins and the owner of the restaurant
// the order belongs to.
func (p AccessPolicy) CanUpdateOrderStatus(actor account.Actor, restaurant *catalog.Restaurant) error {
	if actor.IsAdmin() {
		return nil
	}
	if restaurant != nil && restaurant.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrPermissionDenied
}

// CanAssignCourier permits admins and the owner of the restaurant
// the order belongs to.
func (p AccessPolicy) CanAssignCourier(actor account.Actor, restaurant *catalog.Restaurant) error {
	return p.CanUpdateOrderStatus(actor, restaurant)
}

// CanProcessPayment permits admins and the customer who placed the order.
func (p AccessPolicy) CanProcessPayment(actor account.Actor, anOrder *order.Order) error {
	if actor.IsAdmin() {
		return nil
	}
	if anOrder != nil && anOrder.CustomerID().IsEqual(actor.ID()) {
		return nil
	}
	return ErrPermissionDenied
}

// CanRateOrder permits admins and the customer who placed the order.
func (p AccessPolicy) CanRateOrder(actor account.Actor, anOrder *order.Order) error {
	return p.CanProcessPayment(actor, anOrder)
}

// CanViewOrder permits admins, the customer who placed the order,
// the courier assigned to it and the owner of its restaurant.
func (p AccessPolicy) CanViewOrder(actor account.Actor, anOrder *order.Order, restaurant *catalog.Restaurant) error {
	if actor.IsAdmin() {
		return nil
	}
	if anOrder == nil {
		return ErrPermissionDenied
	}
	if anOrder.CustomerID().IsEqual(actor.ID()) {
		return nil
	}
	if courierID := anOrder.Courier(); courierID != nil && courierID.IsEqual(actor.ID()) {
		return nil
	}
	if restaurant != nil && restaurant.IsOwnedBy(actor.ID()) {
		return nil
	}
	return ErrPermissionDenied
}

package http

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"permission denied", services.ErrPermissionDenied, http.StatusForbidden},
		{"not assigned courier", order.ErrNotAssignedCourier, http.StatusForbidden},
		{"payment declined", payment.ErrPaymentDeclined, http.StatusPaymentRequired},
		{"illegal transition", order.ErrInvalidStatusTransition, http.StatusConflict},
		{"courier already assigned", order.ErrCourierAlreadyAssigned, http.StatusConflict},
		{"duplicate payment", payment.ErrPaymentAlreadyExists, http.StatusConflict},
		{"order not completed", order.ErrOrderNotCompleted, http.StatusConflict},
		{"invalid value", errs.NewValueIsInvalidError("status"), http.StatusBadRequest},
		{"rating out of range", errs.NewValueIsOutOfRangeError("rating", 6, 1, 5), http.StatusBadRequest},
		{"item unavailable", commands.ErrMenuItemUnavailable, http.StatusBadRequest},
		{"foreign menu item", commands.ErrMenuItemNotOnMenu, http.StatusBadRequest},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

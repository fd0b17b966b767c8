package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/application/usecases/queries"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/model/payment"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/errs"
)

// statusFromError maps application and domain errors onto HTTP status
// codes. Unclassified errors are treated as internal.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrPermissionDenied),
		errors.Is(err, order.ErrNotAssignedCourier):
		return http.StatusForbidden
	case errors.Is(err, payment.ErrPaymentDeclined):
		return http.StatusPaymentRequired
	case errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, order.ErrCourierAlreadyAssigned),
		errors.Is(err, order.ErrOrderNotAwaitingCourier),
		errors.Is(err, order.ErrOrderNotCompleted),
		errors.Is(err, payment.ErrPaymentAlreadyExists),
		errors.Is(err, payment.ErrPaymentAlreadySettled):
		return http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, commands.ErrOrderItemsAreRequired),
		errors.Is(err, commands.ErrQuantityIsInvalid),
		errors.Is(err, commands.ErrMenuItemUnavailable),
		errors.Is(err, commands.ErrMenuItemNotOnMenu),
		errors.Is(err, commands.ErrAddressNotOwnedByCustomer),
		errors.Is(err, commands.ErrUserIsNotCourier),
		errors.Is(err, queries.ErrPaymentLookupIsAmbiguous):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal server error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

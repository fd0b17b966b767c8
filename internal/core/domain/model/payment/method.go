package payment

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Method identifies how the customer pays.
type Method int

const (
	// MethodUnknown represents an invalid or undefined method.
	MethodUnknown Method = iota

	// MethodCreditCard is a card payment.
	MethodCreditCard

	// MethodCash is cash on delivery.
	MethodCash

	// MethodMobilePay is a mobile wallet payment.
	MethodMobilePay
)

func getMethodStrings() map[Method]string {
	return map[Method]string{
		MethodUnknown:    "Unknown",
		MethodCreditCard: "CreditCard",
		MethodCash:       "Cash",
		MethodMobilePay:  "MobilePay",
	}
}

func getValidMethodStrings() map[Method]string {
	//nolint:exhaustive // MethodUnknown is intentionally excluded as it's invalid
	return map[Method]string{
		MethodCreditCard: "CreditCard",
		MethodCash:       "Cash",
		MethodMobilePay:  "MobilePay",
	}
}

// MethodFromString parses a payment method name as found in API requests.
func MethodFromString(s string) (Method, error) {
	for method, name := range getValidMethodStrings() {
		if name == s {
			return method, nil
		}
	}
	return MethodUnknown, errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%q is not a valid method", s))
}

// Validate reports whether the method is one of the supported payment methods.
func (m Method) Validate() error {
	if _, ok := getValidMethodStrings()[m]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment method is invalid", fmt.Errorf("%d is not a valid method", m))
	}
	return nil
}

// String returns the method name, or "Unknown" for invalid values.
func (m Method) String() string {
	if str, ok := getMethodStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

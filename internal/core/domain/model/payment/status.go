package payment

import (
	"fmt"

	"foodorder/internal/pkg/errs"
)

// Status represents the settlement state of a payment.
//
// State transitions:
//
//	Processing ──┬──> Success
//	             └──> Failed
//
// A payment settles exactly once: both Success and Failed are terminal.
type Status int

const (
	// StatusUnknown represents an invalid or undefined status.
	StatusUnknown Status = iota

	// StatusProcessing is the initial status while the authorization
	// function has not yet decided.
	StatusProcessing

	// StatusSuccess means the authorization function approved the payment. Terminal.
	StatusSuccess

	// StatusFailed means the authorization function declined the payment.
	// Terminal; failed payment records are retained for auditing.
	StatusFailed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusUnknown:    "Unknown",
		StatusProcessing: "Processing",
		StatusSuccess:    "Success",
		StatusFailed:     "Failed",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // StatusUnknown is intentionally excluded as it's invalid
	return map[Status]string{
		StatusProcessing: "Processing",
		StatusSuccess:    "Success",
		StatusFailed:     "Failed",
	}
}

// StatusFromString parses a settlement status name as stored in the database.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidErrorWithCause("payment status is invalid",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether the status is one of the defined settlement states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("payment status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsSettled reports whether the payment reached a terminal state.
func (s Status) IsSettled() bool {
	return s == StatusSuccess || s == StatusFailed
}

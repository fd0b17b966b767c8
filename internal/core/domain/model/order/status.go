package order

import (
	"errors"
	"fmt"

	"foodorder/internal/pkg/errs"
)

// ErrInvalidStatusTransition is returned when a requested status change is
// not present in the transition table. Transitions out of the terminal
// Completed and Cancelled states always fail with this error.
var ErrInvalidStatusTransition = errors.New("order status transition is not allowed")

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Processing ──> Preparing ──> Delivering ──> Completed
//	     │             │              │
//	     └─────────────┴──────────────┴──> Cancelled
//
// Completed and Cancelled are terminal. The legal transitions are held in
// an explicit table rather than branching logic so the rule is data-driven
// and independently testable.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Processing is the initial status of a freshly placed order.
	Processing

	// Preparing means the restaurant accepted the order and is preparing
	// it. This is the only status in which couriers may be assigned.
	Preparing

	// Delivering means the assigned courier accepted the delivery and is
	// on the way.
	Delivering

	// Completed means the order was delivered. Terminal.
	Completed

	// Cancelled means the order was cancelled before completion. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Processing: "Processing",
		Preparing:  "Preparing",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Processing: "Processing",
		Preparing:  "Preparing",
		Delivering: "Delivering",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// transitionTable maps each status to the set of statuses it may move to.
// Self-transitions are not listed and therefore not allowed.
func transitionTable() map[Status][]Status {
	return map[Status][]Status{
		Processing: {Preparing, Cancelled},
		Preparing:  {Delivering, Cancelled},
		Delivering: {Completed, Cancelled},
		Completed:  {},
		Cancelled:  {},
	}
}

// StatusFromString parses a status name as found in API requests.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate reports whether the status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are legal from this status.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// CanTransitionTo reports whether the transition table permits moving from
// this status to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitionTable()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo returns next if the transition is legal, or
// ErrInvalidStatusTransition describing the rejected pair otherwise.
func (s Status) TransitionTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(next) {
		return Unknown, fmt.Errorf("%w: %s to %s", ErrInvalidStatusTransition, s, next)
	}
	return next, nil
}

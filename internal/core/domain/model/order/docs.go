// Package order provides the Order aggregate root of the food order
// engine: the order itself, its owned line items with immutable price
// snapshots, the status state machine, and the courier assignment
// protocol layered on top of it.
//
// Key business rules:
//   - An order is created with at least one line item; order and items are
//     one atomic unit and the total always equals the sum of item subtotals.
//   - Status moves only along the explicit transition table
//     (Processing -> Preparing -> Delivering -> Completed, with Cancelled
//     reachable from every non-terminal state).
//   - Couriers are assigned only while the order is Preparing and
//     unassigned; accepting moves the order to Delivering, rejecting
//     clears the assignment and leaves it Preparing for reassignment.
//
// The package follows Domain-Driven Design principles: private fields,
// factory constructors, and validated mutation methods keep the aggregate
// in a valid state at all times.
package order

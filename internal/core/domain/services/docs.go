// Package services provides domain services that implement business rules
// spanning multiple aggregates.
//
// The package includes:
//   - AccessPolicy: pure authorization decisions for order, delivery and
//     payment operations
package services

// Package kernel provides the core domain primitives shared across the
// order engine's domain model.
//
// It currently contains a single building block:
//   - UUID: an immutable value object for entity and aggregate identifiers,
//     with validation and comparison behavior.
//
// Kernel types are immutable and thread-safe, and enforce their invariants
// through constructor functions so that domain objects can rely on them
// always being in a valid state.
package kernel

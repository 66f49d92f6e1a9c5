// Package kernel provides the identifier primitives shared across the cargo
// tracking domain model.
//
// The package includes:
//   - TrackingId: the unique, immutable identifier assigned to a cargo at booking
//   - UnLocode: a validated United Nations location code identifying a port or city
//
// Both are immutable value objects compared by value. They can only be created
// through their constructors, which enforce format invariants, so any instance
// that passes Validate is known to be well-formed and safe for concurrent use.
package kernel

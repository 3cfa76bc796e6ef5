// Package kernel provides core domain primitives for the order-processing backend.
// It implements the fundamental value objects used throughout the domain model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - Money: a monetary amount held in integer minor currency units
//   - PostalAddress: a structured shipping address with pincode validation
//
// These primitives enforce domain invariants at construction time, so domain
// objects built from them are always in a valid state. They are immutable and
// safe for concurrent use.
package kernel

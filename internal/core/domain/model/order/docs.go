// Package order provides the Order aggregate and its lifecycle state machine
// for the order-processing backend.
//
// The package includes:
//   - Order: the aggregate root holding identity, customer details, package
//     type and payment state
//   - Status: a state machine enforcing forward-only lifecycle transitions
//   - PackageType: the digital/physical package variant
//   - Customer: the customer contact bundle captured at order creation
//
// Key business rules:
//   - the gateway order id is assigned exactly once at creation and never changes
//   - status only moves forward: created -> paid -> completed, with failed
//     reachable from created or paid and terminal
//   - transitions are idempotent: reapplying an event the order has already
//     absorbed changes nothing and is not an error, which is what makes
//     at-least-once webhook delivery safe
//   - physical packages require a structured shipping address; digital packages
//     never carry one
package order

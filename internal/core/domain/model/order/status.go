package order

import (
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine with forward-only transitions driven by payment gateway events.
//
// State transitions:
//
//	Created ──> Paid ──> Completed
//	   │          │
//	   └──────────┴──> Failed
//
// Completed and Failed are terminal. Transitions that would move a status
// backward, or re-apply a state it already holds, are no-ops rather than
// errors: payment webhooks are delivered at least once and possibly out of
// order, so every transition must be safe to replay.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status assigned when the gateway order has been
	// created and the order is awaiting payment.
	Created

	// Paid indicates a payment was captured for the order.
	Paid

	// Completed indicates the payment provider reported the order fully paid.
	// This is a terminal state.
	Completed

	// Failed indicates the payment failed. This is a terminal state.
	Failed
)

// statusStrings holds the wire representation of each status, matching the
// values persisted in the order store and returned by the API.
func statusStrings() map[Status]string {
	return map[Status]string{
		Created:   "created",
		Paid:      "paid",
		Completed: "completed",
		Failed:    "failed",
	}
}

// ParseStatus converts a persisted status string back into a Status.
// Returns an error for anything that is not one of the four wire values.
func ParseStatus(s string) (Status, error) {
	for status, str := range statusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// String returns the wire representation of the status, or "unknown" for
// invalid values. Implements fmt.Stringer.
func (s Status) String() string {
	if str, ok := statusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Validate checks that the Status is one of the defined lifecycle states.
func (s Status) Validate() error {
	if _, ok := statusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Failed
}

// Capture applies a payment-captured event.
//
// Valid transition:
//   - Created -> Paid
//
// Every other state is left unchanged with changed == false. In particular,
// re-capturing a Paid order is a no-op: that is what prevents a duplicate
// webhook delivery from triggering a second shipment.
func (s Status) Capture() (Status, bool) {
	if s == Created {
		return Paid, true
	}
	return s, false
}

// Fail applies a payment-failed event.
//
// Valid transitions:
//   - Created -> Failed
//   - Paid -> Failed
//
// Terminal states are left unchanged with changed == false.
func (s Status) Fail() (Status, bool) {
	if s == Created || s == Paid {
		return Failed, true
	}
	return s, false
}

// Complete applies an order-paid event from the gateway.
//
// Valid transitions:
//   - Created -> Completed
//   - Paid -> Completed
//
// Terminal states are left unchanged with changed == false.
func (s Status) Complete() (Status, bool) {
	if s == Created || s == Paid {
		return Completed, true
	}
	return s, false
}

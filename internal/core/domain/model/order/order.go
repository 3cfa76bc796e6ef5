package order

import (
	"errors"
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders are properly
// validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// ErrAddressRequiredForPhysical is returned when a physical package order is
// created without a shipping address.
var ErrAddressRequiredForPhysical = errs.NewValueIsRequiredError("address is required for physical packages")

// Order is the aggregate root for a customer order. It ties together the
// locally generated identity, the identity issued by the payment gateway, the
// purchased package and the payment lifecycle.
//
// Order maintains these invariants:
//   - the gateway order id and receipt are set exactly once at creation
//   - the amount is strictly positive (enforced by kernel.Money)
//   - physical packages carry a full shipping address
//   - status transitions only move forward (see Status)
//
// All lifecycle mutations go through Capture, MarkFailed and Complete, each of
// which reports whether it changed anything so callers can distinguish a fresh
// transition from a replayed event.
type Order struct {
	// id is the locally generated identifier.
	id kernel.UUID

	// gatewayOrderID is the identifier issued by the payment gateway.
	// Immutable once assigned.
	gatewayOrderID string

	// receipt is the merchant receipt id sent to the gateway at creation.
	receipt string

	// price is the order amount in integer minor currency units.
	price kernel.Money

	// packageType decides whether a shipment is required after capture.
	packageType PackageType

	// customer is the contact bundle captured at intake.
	customer Customer

	// status is the current lifecycle state.
	status Status

	// paymentID is the gateway payment reference, set at capture.
	paymentID string

	// failureReason records why a payment failed, set on failure.
	failureReason string

	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor.
	isConstructed bool
}

// NewOrder creates an Order in Created status. It is called once the payment
// gateway has issued a remote order id.
//
// Returns an error if any identity field is missing, the package type is
// unknown, or a physical package comes without a shipping address.
func NewOrder(
	id kernel.UUID,
	gatewayOrderID string,
	receipt string,
	price kernel.Money,
	packageType PackageType,
	customer Customer,
	now time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if gatewayOrderID == "" {
		return nil, errs.NewValueIsRequiredError("gateway order id")
	}
	if receipt == "" {
		return nil, errs.NewValueIsRequiredError("receipt")
	}
	if err := price.Validate(); err != nil {
		return nil, err
	}
	if err := packageType.Validate(); err != nil {
		return nil, err
	}
	if packageType.Physical() && customer.Address().IsZero() {
		return nil, ErrAddressRequiredForPhysical
	}

	return &Order{
		id:             id,
		gatewayOrderID: gatewayOrderID,
		receipt:        receipt,
		price:          price,
		packageType:    packageType,
		customer:       customer,
		status:         Created,
		createdAt:      now.UTC(),
		updatedAt:      now.UTC(),
		isConstructed:  true,
	}, nil
}

// RestoreOrder reconstructs an Order from persistence without re-running the
// creation-time invariants that depend on the gateway call. The status must
// still be a valid lifecycle state.
func RestoreOrder(
	id kernel.UUID,
	gatewayOrderID string,
	receipt string,
	price kernel.Money,
	packageType PackageType,
	customer Customer,
	status Status,
	paymentID string,
	failureReason string,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:             id,
		gatewayOrderID: gatewayOrderID,
		receipt:        receipt,
		price:          price,
		packageType:    packageType,
		customer:       customer,
		status:         status,
		paymentID:      paymentID,
		failureReason:  failureReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		isConstructed:  true,
	}, nil
}

// Validate ensures the Order instance was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their local identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the locally generated order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// GatewayOrderID returns the identifier issued by the payment gateway.
func (o *Order) GatewayOrderID() string {
	return o.gatewayOrderID
}

// Receipt returns the merchant receipt id.
func (o *Order) Receipt() string {
	return o.receipt
}

// Price returns the order amount.
func (o *Order) Price() kernel.Money {
	return o.price
}

// PackageType returns the purchased package variant.
func (o *Order) PackageType() PackageType {
	return o.packageType
}

// Customer returns the customer contact bundle.
func (o *Order) Customer() Customer {
	return o.customer
}

// Status returns the current lifecycle state.
func (o *Order) Status() Status {
	return o.status
}

// PaymentID returns the gateway payment reference, empty before capture.
func (o *Order) PaymentID() string {
	return o.paymentID
}

// FailureReason returns the recorded payment failure reason, empty unless the
// order failed.
func (o *Order) FailureReason() string {
	return o.failureReason
}

// CreatedAt returns the creation timestamp (UTC).
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-update timestamp (UTC).
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Capture records a captured payment. On the first application it stores the
// payment reference, moves the order to Paid and returns true. Replays and
// captures against terminal states change nothing and return false.
func (o *Order) Capture(paymentID string, now time.Time) bool {
	next, changed := o.status.Capture()
	if !changed {
		return false
	}

	o.status = next
	o.paymentID = paymentID
	o.updatedAt = now.UTC()
	return true
}

// MarkFailed records a failed payment with the provider's reason. Replays and
// failures against terminal states change nothing and return false.
func (o *Order) MarkFailed(reason string, now time.Time) bool {
	next, changed := o.status.Fail()
	if !changed {
		return false
	}

	o.status = next
	o.failureReason = reason
	o.updatedAt = now.UTC()
	return true
}

// Complete records the gateway's order-paid event. Replays and completions
// against terminal states change nothing and return false.
func (o *Order) Complete(now time.Time) bool {
	next, changed := o.status.Complete()
	if !changed {
		return false
	}

	o.status = next
	o.updatedAt = now.UTC()
	return true
}

package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrCreateShipmentCommandIsNotConstructed is returned when a
// CreateShipmentCommand was not created via NewCreateShipmentCommand.
var ErrCreateShipmentCommandIsNotConstructed = errors.New(
	"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
)

// CreateShipmentCommand represents a request to create a carrier shipment for
// a paid order, or to record a digital delivery for packages that need no
// shipping.
type CreateShipmentCommand struct {
	orderID      string
	customerName string
	email        string
	phone        string
	address      kernel.PostalAddress
	packageType  order.PackageType
	amountMinor  int64

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a shipment command. The address is required
// only for physical packages; digital packages short-circuit before any
// carrier call.
func NewCreateShipmentCommand(
	orderID string,
	customerName string,
	email string,
	phone string,
	address kernel.PostalAddress,
	packageType order.PackageType,
	amountMinor int64,
) (CreateShipmentCommand, error) {
	if orderID == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("order_id")
	}
	if customerName == "" {
		return CreateShipmentCommand{}, errs.NewValueIsRequiredError("customer_name")
	}
	if err := packageType.Validate(); err != nil {
		return CreateShipmentCommand{}, err
	}
	if packageType.Physical() {
		if err := address.Validate(); err != nil {
			return CreateShipmentCommand{}, err
		}
	}

	return CreateShipmentCommand{
		orderID:      orderID,
		customerName: customerName,
		email:        email,
		phone:        phone,
		address:      address,
		packageType:  packageType,
		amountMinor:  amountMinor,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// CommandForOrder builds a shipment command from a stored order aggregate.
// Used by the automatic post-capture trigger.
func CommandForOrder(aggregate *order.Order) (CreateShipmentCommand, error) {
	customer := aggregate.Customer()
	return NewCreateShipmentCommand(
		aggregate.GatewayOrderID(),
		customer.Name(),
		customer.Email(),
		customer.Whatsapp(),
		customer.Address(),
		aggregate.PackageType(),
		aggregate.Price().AmountMinor(),
	)
}

// Validate ensures the command was created through the constructor.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// OrderID returns the gateway order id the shipment belongs to.
func (c CreateShipmentCommand) OrderID() string {
	return c.orderID
}

// CustomerName returns the recipient name.
func (c CreateShipmentCommand) CustomerName() string {
	return c.customerName
}

// Email returns the recipient email, possibly empty.
func (c CreateShipmentCommand) Email() string {
	return c.email
}

// Phone returns the recipient phone, possibly empty.
func (c CreateShipmentCommand) Phone() string {
	return c.phone
}

// Address returns the shipping address; zero for digital packages.
func (c CreateShipmentCommand) Address() kernel.PostalAddress {
	return c.address
}

// PackageType returns the package variant being shipped.
func (c CreateShipmentCommand) PackageType() order.PackageType {
	return c.packageType
}

// AmountMinor returns the order amount in minor units, used as the declared
// shipment value.
func (c CreateShipmentCommand) AmountMinor() int64 {
	return c.amountMinor
}

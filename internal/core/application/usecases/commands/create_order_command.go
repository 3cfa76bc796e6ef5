package commands

import (
	"errors"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a CreateOrderCommand
// was not created via NewCreateOrderCommand.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to create a new order: a remote
// payment order at the gateway plus the local order record.
//
// Example:
//
//	price, _ := kernel.NewMoney(49900, "INR")
//	customer, _ := order.NewCustomer("Asha Rao", "asha@example.com", "", order.BirthDetails{}, kernel.PostalAddress{})
//	cmd, err := commands.NewCreateOrderCommand(price, order.PackagePDF, customer)
//	if err != nil {
//	    return err
//	}
//	result, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct {
	price       kernel.Money
	packageType order.PackageType
	customer    order.Customer

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order. It
// validates the price, the package type and the address rule for physical
// packages, so a constructed command is always safe to hand to the gateway.
func NewCreateOrderCommand(price kernel.Money, packageType order.PackageType, customer order.Customer) (CreateOrderCommand, error) {
	if err := price.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if err := packageType.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}
	if packageType.Physical() && customer.Address().IsZero() {
		return CreateOrderCommand{}, order.ErrAddressRequiredForPhysical
	}

	return CreateOrderCommand{
		price:       price,
		packageType: packageType,
		customer:    customer,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Price returns the order amount.
func (c CreateOrderCommand) Price() kernel.Money {
	return c.price
}

// PackageType returns the requested package variant.
func (c CreateOrderCommand) PackageType() order.PackageType {
	return c.packageType
}

// Customer returns the customer contact bundle.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

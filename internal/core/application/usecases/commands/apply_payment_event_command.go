package commands

import (
	"errors"

	"orderdesk/internal/core/ports"
	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrApplyPaymentEventCommandIsNotConstructed is returned when an
// ApplyPaymentEventCommand was not created through the constructor.
var ErrApplyPaymentEventCommandIsNotConstructed = errors.New(
	"ApplyPaymentEventCommand must be created via NewApplyPaymentEventCommand")

// ApplyPaymentEventCommand carries a decoded, signature-verified gateway
// webhook event into the application layer.
type ApplyPaymentEventCommand struct {
	event ports.PaymentEvent

	guard guard.ConstructorGuard
}

// NewApplyPaymentEventCommand creates a command from a decoded gateway event.
// Handled event kinds must carry a gateway order id; unknown kinds pass
// through so the handler can acknowledge them.
func NewApplyPaymentEventCommand(event ports.PaymentEvent) (ApplyPaymentEventCommand, error) {
	if event.Kind != ports.PaymentEventUnknown && event.GatewayOrderID == "" {
		return ApplyPaymentEventCommand{}, errs.NewValueIsRequiredError("gateway order id")
	}

	return ApplyPaymentEventCommand{
		event: event,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApplyPaymentEventCommand) Validate() error {
	return c.guard.Validate(ErrApplyPaymentEventCommandIsNotConstructed)
}

// Event returns the decoded gateway event.
func (c ApplyPaymentEventCommand) Event() ports.PaymentEvent {
	return c.event
}

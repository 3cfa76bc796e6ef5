package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"orderdesk/internal/pkg/guard"
)

// DefaultCurrency is assumed when an order creation request carries no
// currency code.
const DefaultCurrency = "INR"

// ErrMoneyIsNotConstructed indicates that a Money value was not created through
// the NewMoney constructor.
var ErrMoneyIsNotConstructed = errs.NewValueIsRequiredError("Money must be created via NewMoney")

// Money is a value object holding a monetary amount in integer minor currency
// units (paise for INR). Keeping amounts integral avoids the rounding errors
// that come with floating-point money.
//
// Invariants:
//   - the amount is strictly positive
//   - the currency is a three-letter code
//
// Money is immutable; arithmetic is not provided because the domain only ever
// carries amounts through, it never computes with them.
type Money struct {
	amountMinor int64
	currency    string

	guard guard.ConstructorGuard
}

// NewMoney creates a Money value from an amount in minor units and a currency
// code. An empty currency defaults to DefaultCurrency.
//
// Returns an error if the amount is not strictly positive or the currency code
// is not three letters.
func NewMoney(amountMinor int64, currency string) (Money, error) {
	if amountMinor <= 0 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount",
			fmt.Errorf("%d is not greater than 0", amountMinor))
	}

	if currency == "" {
		currency = DefaultCurrency
	}
	if len(currency) != 3 {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("currency",
			fmt.Errorf("%q is not a three-letter currency code", currency))
	}

	return Money{
		amountMinor: amountMinor,
		currency:    currency,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// AmountMinor returns the amount in minor currency units.
func (m Money) AmountMinor() int64 {
	return m.amountMinor
}

// Currency returns the three-letter currency code.
func (m Money) Currency() string {
	return m.currency
}

// Validate ensures the value was created through NewMoney.
func (m Money) Validate() error {
	return m.guard.Validate(ErrMoneyIsNotConstructed)
}

// String renders the amount for logs, e.g. "49900 INR".
func (m Money) String() string {
	return fmt.Sprintf("%d %s", m.amountMinor, m.currency)
}

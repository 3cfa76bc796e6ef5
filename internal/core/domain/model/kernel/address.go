package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"orderdesk/internal/pkg/guard"
)

// ErrAddressIsNotConstructed indicates that a PostalAddress was not created
// through the NewPostalAddress constructor.
var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("PostalAddress must be created via NewPostalAddress")

// PostalAddress is a structured shipping address. Orders for physical packages
// must carry one; digital packages never need it.
//
// The address is captured field by field at intake. Free-text addresses split
// by commas are not accepted: carrier requests need city, state and pincode as
// separate values, and guessing them from a single string is unreliable.
type PostalAddress struct {
	street  string
	city    string
	state   string
	pincode string

	guard guard.ConstructorGuard
}

// NewPostalAddress creates a validated shipping address. All fields are
// required; the pincode must be six digits (Indian postal codes).
func NewPostalAddress(street, city, state, pincode string) (PostalAddress, error) {
	addr := PostalAddress{}

	if street == "" {
		return PostalAddress{}, errs.NewValueIsRequiredError("street")
	}
	if city == "" {
		return PostalAddress{}, errs.NewValueIsRequiredError("city")
	}
	if state == "" {
		return PostalAddress{}, errs.NewValueIsRequiredError("state")
	}
	if !isPincode(pincode) {
		return PostalAddress{}, errs.NewValueIsInvalidErrorWithCause("pincode",
			fmt.Errorf("%q is not a 6-digit pincode", pincode))
	}

	addr.street = street
	addr.city = city
	addr.state = state
	addr.pincode = pincode
	addr.guard = guard.NewConstructorGuard()
	return addr, nil
}

func isPincode(s string) bool {
	if len(s) != 6 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Street returns the street line of the address.
func (a PostalAddress) Street() string {
	return a.street
}

// City returns the city.
func (a PostalAddress) City() string {
	return a.city
}

// State returns the state.
func (a PostalAddress) State() string {
	return a.state
}

// Pincode returns the six-digit postal code.
func (a PostalAddress) Pincode() string {
	return a.pincode
}

// Validate ensures the address was created through NewPostalAddress.
func (a PostalAddress) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

// IsZero reports whether the address is the zero value. Digital package orders
// carry a zero address.
func (a PostalAddress) IsZero() bool {
	return a == PostalAddress{}
}

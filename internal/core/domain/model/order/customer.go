package order

import (
	"strings"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// BirthDetails carries the optional birth information collected for the
// report. The fields are free-form and pass through to the notification
// spreadsheet untouched.
type BirthDetails struct {
	Date  string
	Time  string
	Place string
}

// Customer is the contact bundle captured with every order. Name and email are
// required; the rest is optional and only the address participates in
// shipping.
type Customer struct {
	name     string
	email    string
	whatsapp string
	birth    BirthDetails
	address  kernel.PostalAddress
}

// NewCustomer creates a validated customer bundle. The address may be the zero
// value for digital packages; whether an address is mandatory is decided by
// the order, not here.
func NewCustomer(name, email, whatsapp string, birth BirthDetails, address kernel.PostalAddress) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer_name")
	}
	if !looksLikeEmail(email) {
		return Customer{}, errs.NewValueIsInvalidError("customer_email")
	}

	return Customer{
		name:     name,
		email:    email,
		whatsapp: whatsapp,
		birth:    birth,
		address:  address,
	}, nil
}

// looksLikeEmail applies the same cheap shape check the intake form does.
// Full RFC validation is left to the mail provider.
func looksLikeEmail(s string) bool {
	at := strings.Index(s, "@")
	return at > 0 && strings.Contains(s[at:], ".")
}

// Name returns the customer's full name.
func (c Customer) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c Customer) Email() string {
	return c.email
}

// Whatsapp returns the customer's WhatsApp number, possibly empty.
func (c Customer) Whatsapp() string {
	return c.whatsapp
}

// Birth returns the optional birth details.
func (c Customer) Birth() BirthDetails {
	return c.birth
}

// Address returns the shipping address; it is the zero value for digital
// package orders.
func (c Customer) Address() kernel.PostalAddress {
	return c.address
}

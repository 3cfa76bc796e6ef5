package http

import (
	"orderdesk/internal/core/domain/model/order"

	"github.com/go-playground/validator/v10"
)

// RequestValidator adapts go-playground/validator to echo's Validator
// interface.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator creates the validator with the struct-level rules the
// intake forms need.
func NewRequestValidator() *RequestValidator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateOrderAddress, CreateOrderRequest{})
	return &RequestValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *RequestValidator) Validate(i any) error {
	return v.validate.Struct(i)
}

// CreateOrderRequest is the order intake form. Amounts arrive in minor
// currency units. Address fields are structured and only required for
// physical packages, enforced by validateOrderAddress.
type CreateOrderRequest struct {
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	Currency      string `json:"currency" validate:"omitempty,len=3,alpha"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	PackageType   string `json:"package_type" validate:"required,oneof=pdf print"`
	BirthDate     string `json:"birth_date"`
	BirthTime     string `json:"birth_time"`
	BirthPlace    string `json:"birth_place"`
	Whatsapp      string `json:"whatsapp"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode" validate:"omitempty,len=6,numeric"`
}

// validateOrderAddress requires the full shipping address when the order is
// for a physical package.
func validateOrderAddress(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateOrderRequest)
	if req.PackageType != order.PackagePrint.String() {
		return
	}

	if req.Address == "" {
		sl.ReportError(req.Address, "address", "Address", "required_for_print", "")
	}
	if req.City == "" {
		sl.ReportError(req.City, "city", "City", "required_for_print", "")
	}
	if req.State == "" {
		sl.ReportError(req.State, "state", "State", "required_for_print", "")
	}
	if req.Pincode == "" {
		sl.ReportError(req.Pincode, "pincode", "Pincode", "required_for_print", "")
	}
}

// CreateShipmentRequest is the manual shipment form. Address fields are
// required for physical packages; digital packages short-circuit before any
// carrier call.
type CreateShipmentRequest struct {
	OrderID       string `json:"order_id" validate:"required"`
	CustomerName  string `json:"customer_name" validate:"required"`
	CustomerEmail string `json:"customer_email" validate:"omitempty,email"`
	CustomerPhone string `json:"customer_phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	Pincode       string `json:"pincode" validate:"omitempty,len=6,numeric"`
	PackageType   string `json:"package_type" validate:"required,oneof=pdf print"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
}

// ServiceabilityRequest asks which couriers can deliver to a pincode. The
// pickup pincode defaults to the configured warehouse when omitted.
type ServiceabilityRequest struct {
	PickupPincode   string  `json:"pickup_pincode" validate:"omitempty,len=6,numeric"`
	DeliveryPincode string  `json:"delivery_pincode" validate:"required,len=6,numeric"`
	WeightKg        float64 `json:"weight" validate:"omitempty,gt=0"`
}

package jsonstore

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"
)

// orderDTO is the persisted representation of an order aggregate. The field
// tags define the on-disk format, which external tooling reads directly, so
// they are part of the system's contract.
type orderDTO struct {
	ID             string      `json:"id"`
	GatewayOrderID string      `json:"razorpay_order_id"`
	Receipt        string      `json:"receipt"`
	Amount         int64       `json:"amount"`
	Currency       string      `json:"currency"`
	Status         string      `json:"status"`
	PackageType    string      `json:"package_type"`
	Customer       customerDTO `json:"customer_details"`
	PaymentID      string      `json:"payment_id,omitempty"`
	FailureReason  string      `json:"failure_reason,omitempty"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

// customerDTO is the persisted customer contact bundle.
type customerDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Whatsapp   string `json:"whatsapp,omitempty"`
	BirthDate  string `json:"birth_date,omitempty"`
	BirthTime  string `json:"birth_time,omitempty"`
	BirthPlace string `json:"birth_place,omitempty"`
	Street     string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Pincode    string `json:"pincode,omitempty"`
}

// fromDomain converts an order aggregate to its persisted representation.
func fromDomain(aggregate *order.Order) orderDTO {
	customer := aggregate.Customer()
	addr := customer.Address()
	return orderDTO{
		ID:             aggregate.ID().String(),
		GatewayOrderID: aggregate.GatewayOrderID(),
		Receipt:        aggregate.Receipt(),
		Amount:         aggregate.Price().AmountMinor(),
		Currency:       aggregate.Price().Currency(),
		Status:         aggregate.Status().String(),
		PackageType:    aggregate.PackageType().String(),
		Customer: customerDTO{
			Name:       customer.Name(),
			Email:      customer.Email(),
			Whatsapp:   customer.Whatsapp(),
			BirthDate:  customer.Birth().Date,
			BirthTime:  customer.Birth().Time,
			BirthPlace: customer.Birth().Place,
			Street:     addr.Street(),
			City:       addr.City(),
			State:      addr.State(),
			Pincode:    addr.Pincode(),
		},
		PaymentID:     aggregate.PaymentID(),
		FailureReason: aggregate.FailureReason(),
		CreatedAt:     aggregate.CreatedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// toDomain reconstructs an order aggregate from its persisted representation.
func toDomain(dto orderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Amount, dto.Currency)
	if err != nil {
		return nil, err
	}

	packageType, err := order.ParsePackageType(dto.PackageType)
	if err != nil {
		return nil, err
	}

	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	addr := kernel.PostalAddress{}
	if dto.Customer.Street != "" || dto.Customer.Pincode != "" {
		addr, err = kernel.NewPostalAddress(dto.Customer.Street, dto.Customer.City,
			dto.Customer.State, dto.Customer.Pincode)
		if err != nil {
			return nil, err
		}
	}

	customer, err := order.NewCustomer(dto.Customer.Name, dto.Customer.Email, dto.Customer.Whatsapp,
		order.BirthDetails{
			Date:  dto.Customer.BirthDate,
			Time:  dto.Customer.BirthTime,
			Place: dto.Customer.BirthPlace,
		}, addr)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.GatewayOrderID, dto.Receipt, price, packageType,
		customer, status, dto.PaymentID, dto.FailureReason, dto.CreatedAt, dto.UpdatedAt)
}

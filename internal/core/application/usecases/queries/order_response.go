// Package queries contains the read side of the application: order lookups,
// tracking timelines, activity log views and the operations summary. Query
// handlers read through the same ports the commands write through and return
// flat read models ready for serialization.
package queries

import (
	"time"

	"orderdesk/internal/core/domain/model/order"
)

// CustomerResponse is the customer contact bundle in the read model.
type CustomerResponse struct {
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

// OrderResponse is the flat order read model returned by lookups, listings
// and tracking.
type OrderResponse struct {
	ID             string           `json:"id"`
	GatewayOrderID string           `json:"razorpay_order_id"`
	Receipt        string           `json:"receipt"`
	Amount         int64            `json:"amount"`
	Currency       string           `json:"currency"`
	Status         string           `json:"status"`
	PackageType    string           `json:"package_type"`
	Customer       CustomerResponse `json:"customer_details"`
	PaymentID      string           `json:"payment_id,omitempty"`
	FailureReason  string           `json:"failure_reason,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`
}

// orderResponseFrom flattens an order aggregate into the read model.
func orderResponseFrom(aggregate *order.Order) OrderResponse {
	customer := aggregate.Customer()
	addr := customer.Address()
	return OrderResponse{
		ID:             aggregate.ID().String(),
		GatewayOrderID: aggregate.GatewayOrderID(),
		Receipt:        aggregate.Receipt(),
		Amount:         aggregate.Price().AmountMinor(),
		Currency:       aggregate.Price().Currency(),
		Status:         aggregate.Status().String(),
		PackageType:    aggregate.PackageType().String(),
		Customer: CustomerResponse{
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

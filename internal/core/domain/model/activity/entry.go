// Package activity provides the append-only activity log entry recorded as a
// side effect of every order, payment and shipment action.
//
// Entries are immutable once created. They hold a free-form payload rather
// than typed fields because they exist for audit and timeline rendering, not
// for driving business decisions; the only soft link back to an order is the
// "order_id" payload key.
package activity

import (
	"time"

	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/pkg/errs"
)

// Category partitions the activity log. Each category persists to its own
// file.
type Category string

const (
	CategoryOrder    Category = "order"
	CategoryPayment  Category = "payment"
	CategoryShipment Category = "shipment"
)

// Validate checks that the Category is one of the defined partitions.
func (c Category) Validate() error {
	switch c {
	case CategoryOrder, CategoryPayment, CategoryShipment:
		return nil
	default:
		return errs.NewValueIsInvalidError("category")
	}
}

// Event type tags recorded in the log. Tracking projections switch on these,
// so their spelling is part of the persisted format.
const (
	TypeOrderCreated    = "ORDER_CREATED"
	TypeOrderError      = "ORDER_ERROR"
	TypePaymentCaptured = "PAYMENT_CAPTURED"
	TypePaymentFailed   = "PAYMENT_FAILED"
	TypeOrderCompleted  = "ORDER_COMPLETED"
	TypeShipmentCreated = "SHIPMENT_CREATED"
	TypeShipmentError   = "SHIPMENT_ERROR"
	TypeShipmentAuto    = "SHIPMENT_AUTO_CREATED"
	TypeShipmentAutoErr = "SHIPMENT_AUTO_ERROR"
	TypeDigitalDelivery = "DIGITAL_DELIVERY"
	TypeTrackingRequest = "TRACKING_REQUESTED"
)

// Entry is a single immutable activity record. The field tags define the
// persisted file format.
type Entry struct {
	ID        kernel.UUID    `json:"id"`
	Timestamp time.Time      `json:"timestamp"`
	Type      string         `json:"type"`
	Data      map[string]any `json:"data"`
}

// NewEntry creates an entry with a fresh id and the given timestamp. A nil
// payload is normalized to an empty map so consumers can index it safely.
func NewEntry(entryType string, data map[string]any, now time.Time) Entry {
	if data == nil {
		data = map[string]any{}
	}
	return Entry{
		ID:        kernel.NewUUID(),
		Timestamp: now.UTC(),
		Type:      entryType,
		Data:      data,
	}
}

// OrderID returns the soft order reference from the payload, or "" when the
// entry is not linked to an order.
func (e Entry) OrderID() string {
	if v, ok := e.Data["order_id"].(string); ok {
		return v
	}
	return ""
}

// StringField returns a string payload field, or "" when absent or not a
// string.
func (e Entry) StringField(key string) string {
	if v, ok := e.Data[key].(string); ok {
		return v
	}
	return ""
}

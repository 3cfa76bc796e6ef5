package shiprocket

import (
	"context"
	"fmt"
	"time"

	"orderdesk/internal/core/domain/model/order"
	"orderdesk/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

// catalogItem describes one sellable line item in the carrier's format.
type catalogItem struct {
	Name         string  `json:"name"`
	SKU          string  `json:"sku"`
	Units        int     `json:"units"`
	SellingPrice float64 `json:"selling_price"`
	Discount     float64 `json:"discount"`
	Tax          float64 `json:"tax"`
	HSN          int     `json:"hsn"`
}

// parcel holds the declared dimensions and weight of the printed book
// package.
type parcel struct {
	WeightKg  float64
	LengthCm  float64
	BreadthCm float64
	HeightCm  float64
}

// bookParcel is the standard parcel for the printed book.
var bookParcel = parcel{WeightKg: 0.5, LengthCm: 25, BreadthCm: 20, HeightCm: 3}

// catalogItemFor returns the line item for a package type with its declared
// value filled in. The value arrives in minor currency units and the carrier
// API takes rupees, so it is converted here at the boundary.
func catalogItemFor(packageType order.PackageType, amountMinor int64) catalogItem {
	price := float64(amountMinor) / 100

	if packageType == order.PackagePDF {
		return catalogItem{
			Name:         "Jeevan Margadarshana - PDF Report",
			SKU:          "JM_PDF_001",
			Units:        1,
			SellingPrice: price,
			HSN:          998314,
		}
	}

	return catalogItem{
		Name:         "Jeevan Margadarshana - Printed Book",
		SKU:          "JM_BOOK_001",
		Units:        1,
		SellingPrice: price,
		HSN:          490110,
	}
}

// adhocOrderRequest is the carrier's adhoc order creation payload.
type adhocOrderRequest struct {
	OrderID             string        `json:"order_id"`
	OrderDate           string        `json:"order_date"`
	PickupLocation      string        `json:"pickup_location"`
	BillingCustomerName string        `json:"billing_customer_name"`
	BillingLastName     string        `json:"billing_last_name"`
	BillingAddress      string        `json:"billing_address"`
	BillingCity         string        `json:"billing_city"`
	BillingPincode      string        `json:"billing_pincode"`
	BillingState        string        `json:"billing_state"`
	BillingCountry      string        `json:"billing_country"`
	BillingEmail        string        `json:"billing_email"`
	BillingPhone        string        `json:"billing_phone"`
	ShippingIsBilling   bool          `json:"shipping_is_billing"`
	OrderItems          []catalogItem `json:"order_items"`
	PaymentMethod       string        `json:"payment_method"`
	SubTotal            float64       `json:"sub_total"`
	Length              float64       `json:"length"`
	Breadth             float64       `json:"breadth"`
	Height              float64       `json:"height"`
	Weight              float64       `json:"weight"`
}

// adhocOrderResponse is the carrier's record of the created shipment.
type adhocOrderResponse struct {
	OrderID     any    `json:"order_id"`
	ShipmentID  any    `json:"shipment_id"`
	AWBCode     string `json:"awb_code"`
	CourierName string `json:"courier_name"`
}

// CreateShipment registers an adhoc prepaid order with the carrier. The
// shipment is always a single line item matching the purchased package.
func (c *Client) CreateShipment(ctx context.Context, req ports.ShipmentRequest) (ports.Shipment, error) {
	payload := adhocOrderRequest{
		OrderID:             req.OrderID,
		OrderDate:           time.Now().UTC().Format("2006-01-02"),
		PickupLocation:      "work",
		BillingCustomerName: req.CustomerName,
		BillingAddress:      req.Address.Street(),
		BillingCity:         req.Address.City(),
		BillingPincode:      req.Address.Pincode(),
		BillingState:        req.Address.State(),
		BillingCountry:      "India",
		BillingEmail:        req.Email,
		BillingPhone:        req.Phone,
		ShippingIsBilling:   true,
		OrderItems:          []catalogItem{catalogItemFor(req.PackageType, req.AmountMinor)},
		PaymentMethod:       "Prepaid",
		SubTotal:            float64(req.AmountMinor) / 100,
		Length:              bookParcel.LengthCm,
		Breadth:             bookParcel.BreadthCm,
		Height:              bookParcel.HeightCm,
		Weight:              bookParcel.WeightKg,
	}

	var created adhocOrderResponse
	resp, err := c.authorized(ctx, func(token string) (*resty.Response, error) {
		return c.http.R().
			SetContext(ctx).
			SetAuthToken(token).
			SetBody(payload).
			SetResult(&created).
			Post("/orders/create/adhoc")
	})
	if err != nil {
		return ports.Shipment{}, err
	}
	if resp.IsError() {
		return ports.Shipment{}, upstreamError(resp, "shipment creation")
	}

	return ports.Shipment{
		CarrierOrderID: stringify(created.OrderID),
		ShipmentID:     stringify(created.ShipmentID),
		AWBCode:        created.AWBCode,
		CourierName:    created.CourierName,
	}, nil
}

// stringify normalizes the carrier's identifiers, which arrive as numbers or
// strings depending on the endpoint.
func stringify(v any) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return fmt.Sprintf("%.0f", value)
	default:
		return fmt.Sprintf("%v", value)
	}
}

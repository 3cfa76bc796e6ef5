package http

import (
	"net/http"

	"orderdesk/internal/core/application/usecases/commands"
	"orderdesk/internal/core/application/usecases/queries"
	"orderdesk/internal/core/domain/model/kernel"
	"orderdesk/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// createOrderResponse is what the storefront checkout widget consumes. The
// order_id is the gateway's identifier; local_order_id is ours.
type createOrderResponse struct {
	Success      bool   `json:"success"`
	OrderID      string `json:"order_id"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Receipt      string `json:"receipt"`
	LocalOrderID string `json:"local_order_id"`
}

// CreateOrder handles POST /api/orders/create - creates the gateway payment
// order and the local order record.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return errorJSON(ctx, http.StatusBadRequest, err)
	}
	if err := ctx.Validate(req); err != nil {
		return respondError(ctx, err)
	}

	// An empty currency falls back to kernel.DefaultCurrency.
	price, err := kernel.NewMoney(req.Amount, req.Currency)
	if err != nil {
		return respondError(ctx, err)
	}

	packageType, err := order.ParsePackageType(req.PackageType)
	if err != nil {
		return respondError(ctx, err)
	}

	address, err := postalAddressFrom(packageType, req.Address, req.City, req.State, req.Pincode)
	if err != nil {
		return respondError(ctx, err)
	}

	customer, err := order.NewCustomer(req.CustomerName, req.CustomerEmail, req.Whatsapp,
		order.BirthDetails{Date: req.BirthDate, Time: req.BirthTime, Place: req.BirthPlace}, address)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(price, packageType, customer)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, createOrderResponse{
		Success:      true,
		OrderID:      result.GatewayOrderID,
		Amount:       result.AmountMinor,
		Currency:     result.Currency,
		Receipt:      result.Receipt,
		LocalOrderID: result.LocalOrderID,
	})
}

// ListOrders handles GET /api/orders - returns every stored order.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.listOrdersHandler.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/orders/:id - looks an order up by its local or
// gateway identifier.
func (s *Server) GetOrder(ctx echo.Context) error {
	query, err := queries.NewGetOrderQuery(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, response)
}

// postalAddressFrom builds the structured address when one is needed. For
// physical packages the full address is mandatory; for digital packages a
// partially filled form is ignored rather than rejected.
func postalAddressFrom(packageType order.PackageType, street, city, state, pincode string) (kernel.PostalAddress, error) {
	if !packageType.Physical() && (street == "" || city == "" || state == "" || pincode == "") {
		return kernel.PostalAddress{}, nil
	}
	return kernel.NewPostalAddress(street, city, state, pincode)
}

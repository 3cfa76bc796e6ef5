package queries

import (
	"errors"

	"orderdesk/internal/pkg/errs"
	"orderdesk/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via NewGetOrderQuery.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order by its local id or its gateway order
// id.
type GetOrderQuery struct {
	idOrGatewayID string

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order lookup.
func NewGetOrderQuery(idOrGatewayID string) (GetOrderQuery, error) {
	if idOrGatewayID == "" {
		return GetOrderQuery{}, errs.NewValueIsRequiredError("order id")
	}

	return GetOrderQuery{
		idOrGatewayID: idOrGatewayID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// IDOrGatewayID returns the lookup key.
func (q GetOrderQuery) IDOrGatewayID() string {
	return q.idOrGatewayID
}

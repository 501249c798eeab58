// Package queries contains read-side lookups in the CQRS architecture.
// Query handlers read the database directly with raw SQL and return plain
// response structs, bypassing the domain aggregates.
package queries

import (
	"errors"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/guard"
)

var ErrGetOrderSummaryQueryIsNotConstructed = errors.New(
	"GetOrderSummaryQuery must be created via NewGetOrderSummaryQuery constructor",
)

// GetOrderSummaryQuery retrieves a persisted order for the thank-you view.
type GetOrderSummaryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderSummaryQuery creates a query for one order's display summary.
func NewGetOrderSummaryQuery(orderID kernel.UUID) (GetOrderSummaryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderSummaryQuery{}, err
	}

	return GetOrderSummaryQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderSummaryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderSummaryQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to summarize.
func (q GetOrderSummaryQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderSummaryQueryResponse is the display-only order context for the
// thank-you view.
type GetOrderSummaryQueryResponse struct {
	ID              kernel.UUID
	FullName        string
	Province        string
	District        string
	PostalCode      string
	DeliveryLine1   string
	DeliveryCity    string
	PackageSize     string
	NumberOfBottles int
	TotalAmount     int
}

package queries

import (
	"context"
	"database/sql"
	"errors"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderSummaryQueryHandler reads one persisted order straight from the
// orders table for display.
type GetOrderSummaryQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderSummaryQueryHandler creates a handler for order summary queries.
func NewGetOrderSummaryQueryHandler(db *gorm.DB) GetOrderSummaryQueryHandler {
	return GetOrderSummaryQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// exists for the identifier.
func (h GetOrderSummaryQueryHandler) Handle(
	ctx context.Context,
	query GetOrderSummaryQuery,
) (GetOrderSummaryQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			full_name,
			province,
			district,
			postal_code,
			delivery_line1,
			delivery_city,
			package_size,
			number_of_bottles,
			total_amount
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderSummaryQueryResponse
	var id uuid.UUID

	err := row.Scan(
		&id,
		&resp.FullName,
		&resp.Province,
		&resp.District,
		&resp.PostalCode,
		&resp.DeliveryLine1,
		&resp.DeliveryCity,
		&resp.PackageSize,
		&resp.NumberOfBottles,
		&resp.TotalAmount,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderSummaryQueryResponse{},
				errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderSummaryQueryResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderSummaryQueryResponse{}, err
	}
	resp.ID = orderID

	return resp, nil
}

// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
// All draft fields are flattened into the orders table; the customer reference
// is indexed for the per-customer listing.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;index"`

	FullName   string
	Province   string
	District   string
	PostalCode string

	AddressLine1 string
	AddressLine2 string
	City         string

	DeliveryLine1 string
	DeliveryLine2 string
	DeliveryCity  string
	SameAsBilling bool

	WhatsappNumber  string
	PackageSize     string
	NumberOfBottles int
	TotalAmount     int

	CreatedAt time.Time
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	d := aggregate.Details()
	return OrderDTO{
		ID:              aggregate.ID().Bytes(),
		CustomerID:      aggregate.CustomerID().Bytes(),
		FullName:        d.FullName,
		Province:        d.Province,
		District:        d.District,
		PostalCode:      d.PostalCode,
		AddressLine1:    d.AddressLine1,
		AddressLine2:    d.AddressLine2,
		City:            d.City,
		DeliveryLine1:   d.DeliveryLine1,
		DeliveryLine2:   d.DeliveryLine2,
		DeliveryCity:    d.DeliveryCity,
		SameAsBilling:   d.SameAsBilling,
		WhatsappNumber:  d.WhatsappNumber,
		PackageSize:     d.PackageSize,
		NumberOfBottles: d.NumberOfBottles,
		TotalAmount:     aggregate.TotalAmount(),
		CreatedAt:       aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into an order aggregate using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	details := order.Draft{
		FullName:        dto.FullName,
		Province:        dto.Province,
		District:        dto.District,
		PostalCode:      dto.PostalCode,
		AddressLine1:    dto.AddressLine1,
		AddressLine2:    dto.AddressLine2,
		City:            dto.City,
		DeliveryLine1:   dto.DeliveryLine1,
		DeliveryLine2:   dto.DeliveryLine2,
		DeliveryCity:    dto.DeliveryCity,
		SameAsBilling:   dto.SameAsBilling,
		WhatsappNumber:  dto.WhatsappNumber,
		PackageSize:     dto.PackageSize,
		NumberOfBottles: dto.NumberOfBottles,
	}

	return order.RestoreOrder(id, customerID, details, dto.TotalAmount, dto.CreatedAt)
}

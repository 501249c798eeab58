package order

import (
	"errors"
	"time"

	"pickleshop/internal/core/domain/model/geography"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/pricing"
	"pickleshop/internal/pkg/errs"
)

// ErrOrderIsNotConstructed is returned when an Order instance was not created
// through NewOrder or RestoreOrder. This ensures all orders were validated.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

// Order is a persisted order aggregate: a validated draft plus the
// server-assigned identifier, the customer who placed it, the derived total
// amount and the creation timestamp.
//
// Invariants:
//   - identifier and customer reference are valid UUIDs
//   - every required draft field is present
//   - postal code matches the catalog entry for the province/district pair
//   - package size is a known price-table key, bottle count within bounds
//   - total amount equals unit price times bottle count
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	details    Draft
	total      int
	createdAt  time.Time

	isConstructed bool
}

// NewOrder validates a draft and creates an Order owned by the given customer.
// The creation timestamp is assigned here; the total amount is derived from
// the price table, never taken from the caller.
//
// Validation reports every failing field at once: the returned error joins one
// errs value per invalid field, each carrying the field name in ParamName.
func NewOrder(id kernel.UUID, customerID kernel.UUID, details Draft) (*Order, error) {
	o := &Order{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	o.total = pricing.Total(o.details.PackageSize, o.details.NumberOfBottles)
	return o, nil
}

// RestoreOrder rehydrates an Order from persistence with its stored total and
// timestamp. Used by repository adapters only.
func RestoreOrder(
	id kernel.UUID, customerID kernel.UUID, details Draft, total int, createdAt time.Time,
) (*Order, error) {
	o := &Order{
		total:         total,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
		o.setDetails(details),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the server-assigned order identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identity reference the order is attached to.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// Details returns a copy of the validated order fields.
func (o *Order) Details() Draft {
	return o.details
}

// TotalAmount returns the derived order total in LKR.
func (o *Order) TotalAmount() int {
	return o.total
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.customerID = id
	return nil
}

func (o *Order) setDetails(details Draft) error {
	if err := ValidateDraft(details); err != nil {
		return err
	}
	o.details = details
	return nil
}

// ValidateDraft checks every required field of a draft and returns all field
// failures joined into one error. A nil result means the draft is submittable.
func ValidateDraft(d Draft) error {
	var fieldErrs []error

	if d.FullName == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("fullName"))
	}
	fieldErrs = append(fieldErrs, validateDraftLocation(d)...)
	if d.AddressLine1 == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("addressLine1"))
	}
	if d.City == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("city"))
	}
	if d.DeliveryLine1 == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("deliveryLine1"))
	}
	if d.DeliveryCity == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("deliveryCity"))
	}
	if _, err := kernel.NewPhoneNumber(d.WhatsappNumber); err != nil {
		fieldErrs = append(fieldErrs, err)
	}
	if d.PackageSize == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("packageSize"))
	} else if _, err := pricing.UnitPrice(d.PackageSize); err != nil {
		fieldErrs = append(fieldErrs, errs.NewValueIsInvalidErrorWithCause("packageSize", err))
	}
	if _, err := kernel.NewBottleCount(d.NumberOfBottles); err != nil {
		fieldErrs = append(fieldErrs, err)
	}

	return errors.Join(fieldErrs...)
}

// validateDraftLocation checks the province/district selection and that the
// postal code is exactly the catalog value derived from it.
func validateDraftLocation(d Draft) []error {
	var fieldErrs []error

	if d.Province == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("province"))
	}
	if d.District == "" {
		fieldErrs = append(fieldErrs, errs.NewValueIsRequiredError("district"))
	}
	if d.Province == "" || d.District == "" {
		return fieldErrs
	}

	code, err := geography.PostalCodeOf(d.Province, d.District)
	if err != nil {
		return append(fieldErrs, errs.NewValueIsInvalidErrorWithCause("district", err))
	}
	if d.PostalCode != code {
		fieldErrs = append(fieldErrs, errs.NewValueIsInvalidError("postalCode"))
	}
	return fieldErrs
}

package services

import (
	"errors"

	"pickleshop/internal/core/domain/model/geography"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/core/domain/model/pricing"
)

// ErrDeliveryAddressIsMirrored is returned when a delivery field edit arrives
// while the "same as billing" toggle is on. Mirrored fields are derived and
// not independently editable.
var ErrDeliveryAddressIsMirrored = errors.New(
	"delivery address is mirrored from billing while same-as-billing is enabled")

// FormController is the domain service owning an order draft and its derived
// state. Every derived field is a pure function of its inputs and is
// recomputed synchronously on each relevant change:
//
//	province            -> district list (catalog lookup)
//	province + district -> postal code (catalog lookup)
//	size + bottle count -> total amount (price table)
//	billing block       -> delivery block (while same-as-billing is on)
//
// The postal code has no setter: it can only change through the cascade, so
// direct user edits are rejected by construction.
//
// After every mutation the controller hands the current draft to the onChange
// sink, which the application wires to the durable snapshot slot. The write
// happens on every mutation regardless of authentication state.
type FormController struct {
	draft     order.Draft
	districts []geography.District
	total     int

	onChange func(order.Draft)
}

// NewFormController creates a controller over an empty draft. onChange may be
// nil when no snapshot persistence is wanted (tests, previews).
func NewFormController(onChange func(order.Draft)) *FormController {
	return &FormController{
		onChange: onChange,
	}
}

// RestoreFromSnapshot repopulates the draft field-by-field from a persisted
// snapshot, skipping empty fields, then recomputes all derived state.
func (c *FormController) RestoreFromSnapshot(snapshot order.Draft) {
	c.draft.ApplySnapshot(snapshot)
	c.recompute()
	c.notify()
}

// Draft returns a copy of the current draft.
func (c *FormController) Draft() order.Draft {
	return c.draft
}

// Districts returns the district list derived from the selected province.
func (c *FormController) Districts() []geography.District {
	out := make([]geography.District, len(c.districts))
	copy(out, c.districts)
	return out
}

// PostalCode returns the derived postal code, empty until a district is chosen.
func (c *FormController) PostalCode() string {
	return c.draft.PostalCode
}

// Total returns the derived total amount in LKR.
func (c *FormController) Total() int {
	return c.total
}

// SetFullName records the customer name.
func (c *FormController) SetFullName(name string) {
	c.draft.FullName = name
	c.notify()
}

// SelectProvince replaces the district list with the districts of the chosen
// province and clears the dependent district and postal code fields. An empty
// name clears the whole cascade.
func (c *FormController) SelectProvince(name string) error {
	if name != "" {
		if _, err := geography.ProvinceByName(name); err != nil {
			return err
		}
	}

	c.draft.Province = name
	c.draft.District = ""
	c.draft.PostalCode = ""
	c.recompute()
	c.notify()
	return nil
}

// SelectDistrict sets the district and derives the postal code from the
// catalog. The district must belong to the currently selected province.
func (c *FormController) SelectDistrict(name string) error {
	if name == "" {
		c.draft.District = ""
		c.draft.PostalCode = ""
		c.notify()
		return nil
	}

	code, err := geography.PostalCodeOf(c.draft.Province, name)
	if err != nil {
		return err
	}

	c.draft.District = name
	c.draft.PostalCode = code
	c.notify()
	return nil
}

// SetAddressLine1 records the first billing address line.
func (c *FormController) SetAddressLine1(line string) {
	c.draft.AddressLine1 = line
	c.mirrorBilling()
	c.notify()
}

// SetAddressLine2 records the second billing address line.
func (c *FormController) SetAddressLine2(line string) {
	c.draft.AddressLine2 = line
	c.mirrorBilling()
	c.notify()
}

// SetCity records the billing locality.
func (c *FormController) SetCity(city string) {
	c.draft.City = city
	c.mirrorBilling()
	c.notify()
}

// SetDeliveryLine1 records the first delivery address line.
// Rejected while the delivery block mirrors billing.
func (c *FormController) SetDeliveryLine1(line string) error {
	if c.draft.SameAsBilling {
		return ErrDeliveryAddressIsMirrored
	}
	c.draft.DeliveryLine1 = line
	c.notify()
	return nil
}

// SetDeliveryLine2 records the second delivery address line.
// Rejected while the delivery block mirrors billing.
func (c *FormController) SetDeliveryLine2(line string) error {
	if c.draft.SameAsBilling {
		return ErrDeliveryAddressIsMirrored
	}
	c.draft.DeliveryLine2 = line
	c.notify()
	return nil
}

// SetDeliveryCity records the delivery locality.
// Rejected while the delivery block mirrors billing.
func (c *FormController) SetDeliveryCity(city string) error {
	if c.draft.SameAsBilling {
		return ErrDeliveryAddressIsMirrored
	}
	c.draft.DeliveryCity = city
	c.notify()
	return nil
}

// SetSameAsBilling toggles delivery-address mirroring. Enabling copies the
// billing block into the delivery block and keeps it in sync on every billing
// edit. Disabling clears the delivery block to empty, editable fields rather
// than freezing the last mirrored values. That asymmetry is intentional and
// matches the storefront's observed behavior.
func (c *FormController) SetSameAsBilling(enabled bool) {
	c.draft.SameAsBilling = enabled
	if enabled {
		c.mirrorBilling()
	} else {
		c.draft.DeliveryLine1 = ""
		c.draft.DeliveryLine2 = ""
		c.draft.DeliveryCity = ""
	}
	c.notify()
}

// SetWhatsappNumber records the contact number. Validation happens at
// submission, not per keystroke.
func (c *FormController) SetWhatsappNumber(number string) {
	c.draft.WhatsappNumber = number
	c.notify()
}

// SelectPackageSize sets the package size and recomputes the total. An empty
// size clears the selection; an unknown size is rejected.
func (c *FormController) SelectPackageSize(size string) error {
	if size != "" {
		if _, err := pricing.UnitPrice(size); err != nil {
			return err
		}
	}

	c.draft.PackageSize = size
	c.recompute()
	c.notify()
	return nil
}

// SetBottleCount records the bottle count and recomputes the total. Bounds
// are enforced at submission; counts below one simply derive a zero total.
func (c *FormController) SetBottleCount(count int) {
	c.draft.NumberOfBottles = count
	c.recompute()
	c.notify()
}

// recompute rebuilds all derived state from the current draft. Calling it
// with an unchanged draft yields identical derived state.
func (c *FormController) recompute() {
	if c.draft.Province == "" {
		c.districts = nil
	} else {
		districts, err := geography.DistrictsOf(c.draft.Province)
		if err != nil {
			c.districts = nil
		} else {
			c.districts = districts
		}
	}

	c.total = pricing.Total(c.draft.PackageSize, c.draft.NumberOfBottles)
}

func (c *FormController) mirrorBilling() {
	if !c.draft.SameAsBilling {
		return
	}
	c.draft.DeliveryLine1 = c.draft.AddressLine1
	c.draft.DeliveryLine2 = c.draft.AddressLine2
	c.draft.DeliveryCity = c.draft.City
}

func (c *FormController) notify() {
	if c.onChange != nil {
		c.onChange(c.draft)
	}
}

package commands

import (
	"time"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/core/ports"
)

// Confirmation is the result of a confirmed order submission: the persisted
// order's identifier, the submitted details and derived total for display,
// and the generated receipt artifact.
type Confirmation struct {
	orderID       kernel.UUID
	details       order.Draft
	totalAmount   int
	receipt       ports.Receipt
	thankYouDelay time.Duration
}

// NewConfirmation bundles the display context handed to the confirmation view.
func NewConfirmation(
	orderID kernel.UUID,
	details order.Draft,
	totalAmount int,
	receipt ports.Receipt,
	thankYouDelay time.Duration,
) Confirmation {
	return Confirmation{
		orderID:       orderID,
		details:       details,
		totalAmount:   totalAmount,
		receipt:       receipt,
		thankYouDelay: thankYouDelay,
	}
}

// OrderID returns the server-assigned order identifier.
func (c Confirmation) OrderID() kernel.UUID {
	return c.orderID
}

// Details returns the submitted order fields for display.
func (c Confirmation) Details() order.Draft {
	return c.details
}

// TotalAmount returns the derived order total in LKR.
func (c Confirmation) TotalAmount() int {
	return c.totalAmount
}

// Receipt returns the generated receipt artifact.
func (c Confirmation) Receipt() ports.Receipt {
	return c.receipt
}

// ThankYouDelay returns how long the confirmation view is shown before the
// thank-you transition fires.
func (c Confirmation) ThankYouDelay() time.Duration {
	return c.thankYouDelay
}

// ScheduleThankYou runs the action once after the configured delay. The
// transition is a single deferred action and is not cancellable.
func (c Confirmation) ScheduleThankYou(action func()) {
	time.AfterFunc(c.thankYouDelay, action)
}

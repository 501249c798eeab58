package commands

import (
	"errors"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

var ErrSubmitOrderCommandIsNotConstructed = errors.New(
	"SubmitOrderCommand must be created via NewSubmitOrderCommand constructor",
)

// SubmitOrderCommand represents a request to submit the current order draft.
// It carries the server-assigned order identifier, the client's snapshot slot
// and the draft as entered. Field-level draft validation happens inside the
// submission pipeline, after the session gate, so that anonymous submissions
// of incomplete drafts still reach the snapshot slot.
type SubmitOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	snapshotSlot string
	details      order.Draft

	guard guard.ConstructorGuard
}

// NewSubmitOrderCommand creates a command to submit an order draft.
// Validates that the order ID is valid and the snapshot slot is named.
func NewSubmitOrderCommand(
	orderID kernel.UUID, snapshotSlot string, details order.Draft,
) (SubmitOrderCommand, error) {
	cmd := SubmitOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setSnapshotSlot(snapshotSlot),
	); err != nil {
		return SubmitOrderCommand{}, err
	}

	cmd.details = details
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitOrderCommand) Validate() error {
	return c.guard.Validate(ErrSubmitOrderCommandIsNotConstructed)
}

// OrderID returns the server-assigned identifier for the order.
func (c SubmitOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SnapshotSlot returns the client's draft snapshot slot name.
func (c SubmitOrderCommand) SnapshotSlot() string {
	return c.snapshotSlot
}

// Details returns the draft as entered by the customer.
func (c SubmitOrderCommand) Details() order.Draft {
	return c.details
}

func (c *SubmitOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SubmitOrderCommand) setSnapshotSlot(slot string) error {
	if slot == "" {
		return errs.NewValueIsRequiredError("snapshotSlot")
	}

	c.snapshotSlot = slot
	return nil
}

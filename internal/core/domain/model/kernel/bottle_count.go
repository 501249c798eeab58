package kernel

import (
	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

const (
	// BottleCountMin is the smallest number of bottles accepted per order.
	BottleCountMin = 1
	// BottleCountMax is the largest number of bottles accepted per order.
	BottleCountMax = 50
)

// ErrBottleCountIsNotConstructed is returned when validating a zero-value
// BottleCount. Use NewBottleCount to create instances.
var ErrBottleCountIsNotConstructed = errs.NewValueIsRequiredError(
	"bottle count must be created via NewBottleCount")

// BottleCount is a validated per-order bottle quantity within
// [BottleCountMin, BottleCountMax]. The zero value is invalid.
type BottleCount struct { //nolint:recvcheck //using for validation
	value int
	guard guard.ConstructorGuard
}

// NewBottleCount creates a BottleCount, enforcing the order-size bounds.
func NewBottleCount(value int) (BottleCount, error) {
	count := BottleCount{
		guard: guard.NewConstructorGuard(),
	}

	if err := count.setValue(value); err != nil {
		return BottleCount{}, err
	}

	return count, nil
}

// Validate checks the BottleCount was created via its constructor.
func (c BottleCount) Validate() error {
	return c.guard.Validate(ErrBottleCountIsNotConstructed)
}

// Value returns the number of bottles.
func (c BottleCount) Value() int {
	return c.value
}

func (c *BottleCount) setValue(value int) error {
	if value < BottleCountMin || value > BottleCountMax {
		return errs.NewValueIsOutOfRangeError("numberOfBottles", value, BottleCountMin, BottleCountMax)
	}

	c.value = value
	return nil
}

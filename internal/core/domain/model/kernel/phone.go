package kernel

import (
	"regexp"

	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

// ErrPhoneNumberIsNotConstructed is returned when validating a zero-value
// PhoneNumber. Use NewPhoneNumber to create instances.
var ErrPhoneNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"phone number must be created via NewPhoneNumber")

// phonePattern accepts digits, plus, minus, spaces and parentheses only.
// Deliberately permissive: orders are confirmed over WhatsApp by a human,
// so the number only has to be dialable, not canonical.
var phonePattern = regexp.MustCompile(`^[0-9+\-\s()]+$`)

// PhoneNumber is a validated WhatsApp contact number.
// The zero value is invalid; use NewPhoneNumber.
type PhoneNumber struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewPhoneNumber creates a PhoneNumber after checking it is non-empty and
// matches the permissive phone pattern.
func NewPhoneNumber(value string) (PhoneNumber, error) {
	phone := PhoneNumber{
		guard: guard.NewConstructorGuard(),
	}

	if err := phone.setValue(value); err != nil {
		return PhoneNumber{}, err
	}

	return phone, nil
}

// Validate checks the PhoneNumber was created via its constructor.
func (p PhoneNumber) Validate() error {
	return p.guard.Validate(ErrPhoneNumberIsNotConstructed)
}

// String returns the number exactly as the customer entered it.
func (p PhoneNumber) String() string {
	return p.value
}

// IsEqual compares two phone numbers by their raw value.
func (p PhoneNumber) IsEqual(other PhoneNumber) bool {
	return p.value == other.value
}

func (p *PhoneNumber) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("whatsappNumber")
	}
	if !phonePattern.MatchString(value) {
		return errs.NewValueIsInvalidError("whatsappNumber")
	}

	p.value = value
	return nil
}

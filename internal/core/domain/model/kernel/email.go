package kernel

import (
	"regexp"
	"strings"

	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

// ErrEmailAddressIsNotConstructed is returned when validating a zero-value
// EmailAddress. Use NewEmailAddress to create instances.
var ErrEmailAddressIsNotConstructed = errs.NewValueIsRequiredError(
	"email address must be created via NewEmailAddress")

// emailPattern mirrors the storefront's permissive check: something before
// and after a single "@", no whitespace.
var emailPattern = regexp.MustCompile(`^\S+@\S+$`)

// EmailAddress is a validated, lower-cased email address used for customer
// accounts and contact messages. The zero value is invalid.
type EmailAddress struct { //nolint:recvcheck //using for validation
	value string
	guard guard.ConstructorGuard
}

// NewEmailAddress creates an EmailAddress, lower-casing it for storage so
// account lookups are case-insensitive.
func NewEmailAddress(value string) (EmailAddress, error) {
	email := EmailAddress{
		guard: guard.NewConstructorGuard(),
	}

	if err := email.setValue(value); err != nil {
		return EmailAddress{}, err
	}

	return email, nil
}

// Validate checks the EmailAddress was created via its constructor.
func (e EmailAddress) Validate() error {
	return e.guard.Validate(ErrEmailAddressIsNotConstructed)
}

// String returns the normalized address.
func (e EmailAddress) String() string {
	return e.value
}

// IsEqual compares two addresses after normalization.
func (e EmailAddress) IsEqual(other EmailAddress) bool {
	return e.value == other.value
}

func (e *EmailAddress) setValue(value string) error {
	if value == "" {
		return errs.NewValueIsRequiredError("email")
	}
	if !emailPattern.MatchString(value) {
		return errs.NewValueIsInvalidError("email")
	}

	e.value = strings.ToLower(value)
	return nil
}

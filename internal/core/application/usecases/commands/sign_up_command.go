package commands

import (
	"errors"
	"fmt"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

var ErrSignUpCommandIsNotConstructed = errors.New(
	"SignUpCommand must be created via NewSignUpCommand constructor",
)

// passwordMinLength is the minimum accepted password length for new accounts.
const passwordMinLength = 6

// SignUpCommand represents a request to register a new customer account.
type SignUpCommand struct { //nolint:recvcheck //using for validation
	email    kernel.EmailAddress
	password string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register an account.
// Validates the email shape and the minimum password length.
func NewSignUpCommand(email string, password string) (SignUpCommand, error) {
	cmd := SignUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignUpCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// Email returns the normalized account email.
func (c SignUpCommand) Email() kernel.EmailAddress {
	return c.email
}

// Password returns the plain-text password. It is hashed before storage and
// never persisted as-is.
func (c SignUpCommand) Password() string {
	return c.password
}

func (c *SignUpCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmailAddress(email)
	if err != nil {
		return err
	}

	c.email = parsed
	return nil
}

func (c *SignUpCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}
	if len(password) < passwordMinLength {
		return errs.NewValueIsInvalidErrorWithCause("password",
			fmt.Errorf("must be at least %d characters", passwordMinLength))
	}

	c.password = password
	return nil
}

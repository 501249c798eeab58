package commands

import (
	"errors"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

var ErrSignInCommandIsNotConstructed = errors.New(
	"SignInCommand must be created via NewSignInCommand constructor",
)

// SignInCommand represents a request to authenticate an existing account.
type SignInCommand struct { //nolint:recvcheck //using for validation
	email    kernel.EmailAddress
	password string

	guard guard.ConstructorGuard
}

// NewSignInCommand creates a command to authenticate with email and password.
func NewSignInCommand(email string, password string) (SignInCommand, error) {
	cmd := SignInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setEmail(email),
		cmd.setPassword(password),
	); err != nil {
		return SignInCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SignInCommand) Validate() error {
	return c.guard.Validate(ErrSignInCommandIsNotConstructed)
}

// Email returns the normalized account email.
func (c SignInCommand) Email() kernel.EmailAddress {
	return c.email
}

// Password returns the plain-text password to check against the stored digest.
func (c SignInCommand) Password() string {
	return c.password
}

func (c *SignInCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmailAddress(email)
	if err != nil {
		return err
	}

	c.email = parsed
	return nil
}

func (c *SignInCommand) setPassword(password string) error {
	if password == "" {
		return errs.NewValueIsRequiredError("password")
	}

	c.password = password
	return nil
}

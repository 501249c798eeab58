package commands

import (
	"errors"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
	"pickleshop/internal/pkg/guard"
)

var ErrSendContactMessageCommandIsNotConstructed = errors.New(
	"SendContactMessageCommand must be created via NewSendContactMessageCommand constructor",
)

// SendContactMessageCommand represents a contact-form submission: the
// sender's name and email plus the free-text message body.
type SendContactMessageCommand struct { //nolint:recvcheck //using for validation
	name  string
	email kernel.EmailAddress
	body  string

	guard guard.ConstructorGuard
}

// NewSendContactMessageCommand creates a command to deliver a contact-form
// message. All three fields are required.
func NewSendContactMessageCommand(name, email, body string) (SendContactMessageCommand, error) {
	cmd := SendContactMessageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setBody(body),
	); err != nil {
		return SendContactMessageCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c SendContactMessageCommand) Validate() error {
	return c.guard.Validate(ErrSendContactMessageCommandIsNotConstructed)
}

// Name returns the sender's name.
func (c SendContactMessageCommand) Name() string {
	return c.name
}

// Email returns the sender's normalized email.
func (c SendContactMessageCommand) Email() kernel.EmailAddress {
	return c.email
}

// Body returns the message body.
func (c SendContactMessageCommand) Body() string {
	return c.body
}

func (c *SendContactMessageCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	c.name = name
	return nil
}

func (c *SendContactMessageCommand) setEmail(email string) error {
	parsed, err := kernel.NewEmailAddress(email)
	if err != nil {
		return err
	}

	c.email = parsed
	return nil
}

func (c *SendContactMessageCommand) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("message")
	}

	c.body = body
	return nil
}

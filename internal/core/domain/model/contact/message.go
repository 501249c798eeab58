// Package contact provides the contact-form message aggregate.
package contact

import (
	"errors"
	"time"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
)

// ErrMessageIsNotConstructed is returned when a Message instance was not
// created through NewMessage or RestoreMessage.
var ErrMessageIsNotConstructed = errors.New("Message must be created via NewMessage or RestoreMessage")

// Message is a contact-form submission: the sender's name and email plus the
// free-text body.
type Message struct {
	id        kernel.UUID
	name      string
	email     kernel.EmailAddress
	body      string
	createdAt time.Time

	isConstructed bool
}

// NewMessage creates a Message with a fresh creation timestamp.
func NewMessage(id kernel.UUID, name string, email kernel.EmailAddress, body string) (*Message, error) {
	m := &Message{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setEmail(email),
		m.setBody(body),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMessage rehydrates a Message from persistence.
func RestoreMessage(
	id kernel.UUID, name string, email kernel.EmailAddress, body string, createdAt time.Time,
) (*Message, error) {
	m := &Message{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setEmail(email),
		m.setBody(body),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// Validate ensures the Message was created through a constructor.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message identifier.
func (m *Message) ID() kernel.UUID {
	return m.id
}

// Name returns the sender's name.
func (m *Message) Name() string {
	return m.name
}

// Email returns the sender's email.
func (m *Message) Email() kernel.EmailAddress {
	return m.email
}

// Body returns the free-text message body.
func (m *Message) Body() string {
	return m.body
}

// CreatedAt returns the submission timestamp.
func (m *Message) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Message) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Message) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = name
	return nil
}

func (m *Message) setEmail(email kernel.EmailAddress) error {
	if err := email.Validate(); err != nil {
		return err
	}
	m.email = email
	return nil
}

func (m *Message) setBody(body string) error {
	if body == "" {
		return errs.NewValueIsRequiredError("message")
	}
	m.body = body
	return nil
}

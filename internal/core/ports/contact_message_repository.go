package ports

import (
	"context"

	"pickleshop/internal/core/domain/model/contact"
)

// ContactMessageRepository defines the persistence contract for contact-form
// messages.
type ContactMessageRepository interface {
	// Add persists a new contact message to storage.
	Add(ctx context.Context, aggregate *contact.Message) error
}

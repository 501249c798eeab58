// Package contactrepo provides data transfer objects and mapping functions for
// contact-form message persistence.
package contactrepo

import (
	"time"

	"pickleshop/internal/core/domain/model/contact"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting contact messages.
type MessageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string
	Email     string
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
}

// TableName specifies the database table name for contact messages.
func (MessageDTO) TableName() string {
	return "contact_messages"
}

// fromDomain converts a message aggregate to its database representation.
func fromDomain(aggregate *contact.Message) MessageDTO {
	return MessageDTO{
		ID:        aggregate.ID().Bytes(),
		Name:      aggregate.Name(),
		Email:     aggregate.Email().String(),
		Body:      aggregate.Body(),
		CreatedAt: aggregate.CreatedAt(),
	}
}

// Package userrepo provides data transfer objects and mapping functions for
// customer account persistence.
package userrepo

import (
	"time"

	"pickleshop/internal/core/domain/model/account"
	"pickleshop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// UserDTO represents the database structure for persisting customer accounts.
// The email carries a unique index to back the duplicate check on sign-up.
type UserDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"uniqueIndex"`
	PasswordHash string
	CreatedAt    time.Time
}

// TableName specifies the database table name for account entities.
func (UserDTO) TableName() string {
	return "users"
}

// fromDomain converts a user domain aggregate to its database representation.
func fromDomain(aggregate *account.User) UserDTO {
	return UserDTO{
		ID:           aggregate.ID().Bytes(),
		Email:        aggregate.Email().String(),
		PasswordHash: aggregate.PasswordHash(),
		CreatedAt:    aggregate.CreatedAt(),
	}
}

// toDomain converts a database DTO back into a user aggregate using RestoreUser.
func toDomain(dto UserDTO) (*account.User, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	email, err := kernel.NewEmailAddress(dto.Email)
	if err != nil {
		return nil, err
	}

	return account.RestoreUser(id, email, dto.PasswordHash, dto.CreatedAt)
}

// Package account provides the customer account aggregate and credential
// hashing used by the sign-up and sign-in flows.
package account

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
)

// ErrUserIsNotConstructed is returned when a User instance was not created
// through NewUser or RestoreUser.
var ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser")

// HashPassword returns the hex-encoded SHA-256 digest of a plain-text
// password. The digest, never the plain text, is what gets stored and
// compared on sign-in.
func HashPassword(plain string) string {
	sum := sha256.Sum256([]byte(plain))
	return hex.EncodeToString(sum[:])
}

// User is a registered customer account: identifier, normalized email and
// the stored password digest.
type User struct {
	id           kernel.UUID
	email        kernel.EmailAddress
	passwordHash string
	createdAt    time.Time

	isConstructed bool
}

// NewUser creates a User with a fresh creation timestamp.
// The passwordHash must come from HashPassword.
func NewUser(id kernel.UUID, email kernel.EmailAddress, passwordHash string) (*User, error) {
	u := &User{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// RestoreUser rehydrates a User from persistence.
func RestoreUser(
	id kernel.UUID, email kernel.EmailAddress, passwordHash string, createdAt time.Time,
) (*User, error) {
	u := &User{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		u.setID(id),
		u.setEmail(email),
		u.setPasswordHash(passwordHash),
	); err != nil {
		return nil, err
	}

	return u, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the account identifier.
func (u *User) ID() kernel.UUID {
	return u.id
}

// Email returns the account email.
func (u *User) Email() kernel.EmailAddress {
	return u.email
}

// PasswordHash returns the stored password digest.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// CreatedAt returns the account creation timestamp.
func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

// MatchesPassword reports whether a plain-text password hashes to the
// stored digest.
func (u *User) MatchesPassword(plain string) bool {
	return u.passwordHash == HashPassword(plain)
}

func (u *User) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	u.id = id
	return nil
}

func (u *User) setEmail(email kernel.EmailAddress) error {
	if err := email.Validate(); err != nil {
		return err
	}
	u.email = email
	return nil
}

func (u *User) setPasswordHash(hash string) error {
	if hash == "" {
		return errs.NewValueIsRequiredError("passwordHash")
	}
	u.passwordHash = hash
	return nil
}

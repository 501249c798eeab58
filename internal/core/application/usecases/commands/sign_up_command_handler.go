package commands

import (
	"context"
	"errors"

	"pickleshop/internal/core/domain/model/account"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/pkg/errs"
)

// ErrEmailAlreadyRegistered is returned when a sign-up uses an email that
// already has an account.
var ErrEmailAlreadyRegistered = errors.New("an account with this email already exists")

// SignUpCommandHandler registers new customer accounts. The plain-text
// password is hashed before the aggregate is created; only the digest is
// persisted.
type SignUpCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSignUpCommandHandler creates a handler for account registration.
func NewSignUpCommandHandler(uowFactory UserUoWFactory) SignUpCommandHandler {
	return SignUpCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-up command. Rejects duplicate emails, then
// creates and persists the account within a transaction.
func (h *SignUpCommandHandler) Handle(ctx context.Context, cmd SignUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	userRepo := uow.UserRepository()
	_, err := userRepo.GetByEmail(ctx, cmd.Email())
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	user, err := account.NewUser(kernel.NewUUID(), cmd.Email(), account.HashPassword(cmd.Password()))
	if err != nil {
		return err
	}

	if err = userRepo.Add(ctx, user); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

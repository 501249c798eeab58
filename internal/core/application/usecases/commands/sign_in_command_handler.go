package commands

import (
	"context"
	"errors"

	"pickleshop/internal/core/application/session"
	"pickleshop/internal/pkg/errs"
)

// ErrInvalidCredentials is returned on sign-in when the email is unknown or
// the password does not match. The two cases are deliberately
// indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid email or password")

// SignInCommandHandler authenticates a customer and establishes the identity
// on the caller's session.
type SignInCommandHandler struct {
	uowFactory UserUoWFactory
}

// NewSignInCommandHandler creates a handler for sign-in operations.
func NewSignInCommandHandler(uowFactory UserUoWFactory) SignInCommandHandler {
	return SignInCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the sign-in command. On success the identity is attached
// to the session and available synchronously to the submission gate.
func (h *SignInCommandHandler) Handle(
	ctx context.Context, sess *session.Session, cmd SignInCommand,
) error {
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

	user, err := uow.UserRepository().GetByEmail(ctx, cmd.Email())
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}

	if !user.MatchesPassword(cmd.Password()) {
		return ErrInvalidCredentials
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	sess.Establish(session.Identity{
		UserID: user.ID(),
		Email:  user.Email(),
	})
	return nil
}

package commands_test

import (
	"context"
	"errors"
	"testing"

	"pickleshop/internal/core/application/session"
	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/core/domain/model/account"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/ports"
	"pickleshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *account.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepository) Get(_ context.Context, _ kernel.UUID) (*account.User, error) {
	return nil, errors.New("not implemented in mock")
}
func (m *MockUserRepository) GetByEmail(ctx context.Context, email kernel.EmailAddress) (*account.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*account.User)
	return user, args.Error(1)
}

type MockUserUoW struct{ mock.Mock }

func (m *MockUserUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUserUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUserUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUserUoWFactory struct{ mock.Mock }

func (m *MockUserUoWFactory) Create() commands.UserUoW {
	args := m.Called()
	return args.Get(0).(commands.UserUoW)
}

func existingUser(t *testing.T, emailAddr, password string) *account.User {
	t.Helper()
	email, err := kernel.NewEmailAddress(emailAddr)
	require.NoError(t, err)
	user, err := account.NewUser(kernel.NewUUID(), email, account.HashPassword(password))
	require.NoError(t, err)
	return user
}

func TestSignUpCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignUpCommand("customer@example.com", "hunter22")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, cmd.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", "customer@example.com")).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*account.User")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSignUpCommandHandler_Handle_DuplicateEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignUpCommand("customer@example.com", "hunter22")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, cmd.Email()).
			Return(existingUser(t, "customer@example.com", "other"), nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignUpCommandHandler(factory)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, commands.ErrEmailAlreadyRegistered)
	repo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSignUpCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SignUpCommand{} // not constructed properly
	h := commands.NewSignUpCommandHandler(new(MockUserUoWFactory))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestSignInCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignInCommand("customer@example.com", "hunter22")
	user := existingUser(t, "customer@example.com", "hunter22")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, cmd.Email()).Return(user, nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	sess := session.NewSession()
	h := commands.NewSignInCommandHandler(factory)
	err := h.Handle(ctx, sess, cmd)
	require.NoError(t, err)

	identity, ok := sess.Current()
	require.True(t, ok)
	assert.True(t, identity.UserID.IsEqual(user.ID()))
	assert.Equal(t, "customer@example.com", identity.Email.String())
}

func TestSignInCommandHandler_Handle_WrongPassword(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignInCommand("customer@example.com", "wrong-password")
	user := existingUser(t, "customer@example.com", "hunter22")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, cmd.Email()).Return(user, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	sess := session.NewSession()
	h := commands.NewSignInCommandHandler(factory)
	err := h.Handle(ctx, sess, cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)

	_, ok := sess.Current()
	assert.False(t, ok)
}

func TestSignInCommandHandler_Handle_UnknownEmail(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSignInCommand("nobody@example.com", "hunter22")

	repo := new(MockUserRepository)
	uow := new(MockUserUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("UserRepository").Return(repo).Once(),
		repo.On("GetByEmail", ctx, cmd.Email()).
			Return(nil, errs.NewObjectNotFoundError("email", "nobody@example.com")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUserUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSignInCommandHandler(factory)
	err := h.Handle(ctx, session.NewSession(), cmd)
	require.ErrorIs(t, err, commands.ErrInvalidCredentials)
}

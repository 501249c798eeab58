package commands_test

import (
	"context"
	"errors"
	"testing"

	"pickleshop/internal/core/application/usecases/commands"
	"pickleshop/internal/core/domain/model/contact"
	"pickleshop/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockContactMessageRepository struct{ mock.Mock }

func (m *MockContactMessageRepository) Add(ctx context.Context, msg *contact.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

type MockContactUoW struct{ mock.Mock }

func (m *MockContactUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockContactUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockContactUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContactUoW) ContactMessageRepository() ports.ContactMessageRepository {
	args := m.Called()
	return args.Get(0).(ports.ContactMessageRepository)
}

type MockContactUoWFactory struct{ mock.Mock }

func (m *MockContactUoWFactory) Create() commands.ContactUoW {
	args := m.Called()
	return args.Get(0).(commands.ContactUoW)
}

func newContactHandler(factory commands.ContactUoWFactory, notifier ports.Notifier) commands.SendContactMessageCommandHandler {
	return commands.NewSendContactMessageCommandHandler(
		factory, notifier, discardLogger(), "template_contact",
	)
}

func TestSendContactMessageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendContactMessageCommand("Kamala", "asker@example.com", "Do you deliver to Galle?")

	repo := new(MockContactMessageRepository)
	uow := new(MockContactUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContactMessageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*contact.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockContactUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := NewMockNotifier()
	notifier.On("Send", ctx, "template_contact", map[string]string{
		"from_name":  "Kamala",
		"from_email": "asker@example.com",
		"message":    "Do you deliver to Galle?",
	}).Return(nil).Once()

	h := newContactHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	repo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestSendContactMessageCommandHandler_Handle_StoreFailureStillSends(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendContactMessageCommand("Kamala", "asker@example.com", "hello")

	repo := new(MockContactMessageRepository)
	uow := new(MockContactUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContactMessageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*contact.Message")).
			Return(errors.New("insert failed")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockContactUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := NewMockNotifier()
	notifier.On("Send", ctx, "template_contact", mock.Anything).Return(nil).Once()

	h := newContactHandler(factory, notifier)
	require.NoError(t, h.Handle(ctx, cmd))
	notifier.AssertExpectations(t)
}

func TestSendContactMessageCommandHandler_Handle_SendFailureSurfaces(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewSendContactMessageCommand("Kamala", "asker@example.com", "hello")

	repo := new(MockContactMessageRepository)
	uow := new(MockContactUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContactMessageRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*contact.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockContactUoWFactory)
	factory.On("Create").Return(uow).Once()

	sendErr := errors.New("relay rejected: 400 Bad Request")
	notifier := NewMockNotifier()
	notifier.On("Send", ctx, "template_contact", mock.Anything).Return(sendErr).Once()

	h := newContactHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, sendErr)
}

func TestSendContactMessageCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.SendContactMessageCommand{} // not constructed properly

	h := newContactHandler(new(MockContactUoWFactory), NewMockNotifier())
	require.Error(t, h.Handle(ctx, cmd))
}

package commands

import (
	"context"
	"log/slog"

	"pickleshop/internal/core/domain/model/contact"
	"pickleshop/internal/core/domain/model/kernel"
	"pickleshop/internal/core/ports"
)

// SendContactMessageCommandHandler delivers contact-form messages. The
// message row is stored for the operator's records; a failed insert is logged
// and the email still goes out, because losing the audit row must not lose
// the enquiry. A failed email send is the command's error.
type SendContactMessageCommandHandler struct {
	uowFactory ContactUoWFactory
	notifier   ports.Notifier
	log        *slog.Logger

	contactTemplateID string
}

// NewSendContactMessageCommandHandler creates a handler for contact-form
// submissions. contactTemplateID names the relay template for the enquiry
// email.
func NewSendContactMessageCommandHandler(
	uowFactory ContactUoWFactory,
	notifier ports.Notifier,
	log *slog.Logger,
	contactTemplateID string,
) SendContactMessageCommandHandler {
	return SendContactMessageCommandHandler{
		uowFactory:        uowFactory,
		notifier:          notifier,
		log:               log,
		contactTemplateID: contactTemplateID,
	}
}

// Handle stores the message and sends the enquiry email.
func (h *SendContactMessageCommandHandler) Handle(
	ctx context.Context, cmd SendContactMessageCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	message, err := contact.NewMessage(kernel.NewUUID(), cmd.Name(), cmd.Email(), cmd.Body())
	if err != nil {
		return err
	}

	if err = h.store(ctx, message); err != nil {
		h.log.Error("storing contact message", "messageId", message.ID().String(), "error", err)
	}

	return h.notifier.Send(ctx, h.contactTemplateID, map[string]string{
		"from_name":  cmd.Name(),
		"from_email": cmd.Email().String(),
		"message":    cmd.Body(),
	})
}

func (h *SendContactMessageCommandHandler) store(ctx context.Context, message *contact.Message) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.ContactMessageRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

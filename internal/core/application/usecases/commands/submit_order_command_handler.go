package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"pickleshop/internal/core/application/session"
	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/core/ports"
)

var (
	// ErrSignInRequired is the session gate's call-to-action: the draft has
	// been saved to the snapshot slot and nothing was persisted.
	ErrSignInRequired = errors.New("sign in to place an order")

	// ErrOrderPersistenceFailed is the generic terminal error when the order
	// could not be written. The snapshot slot is intentionally left intact so
	// the customer can retry without re-entering anything.
	ErrOrderPersistenceFailed = errors.New("order could not be saved, please try again")
)

// SubmitOrderCommandHandler runs the order submission pipeline. Each call
// walks one SubmissionState machine from Idle to a terminal state:
//
//   - the session gate runs before the pipeline: an anonymous submission
//     writes the draft to the snapshot slot and stops with ErrSignInRequired;
//   - Validating halts on the first invalid draft with field-level errors and
//     no side effects;
//   - Persisting writes the order atomically through the unit of work; any
//     failure here, or any unexpected error, is terminal and generic;
//   - Notifying dispatches the operator email on a detached goroutine; the
//     outcome is logged and never awaited;
//   - GeneratingReceipt renders the receipt; a failure here is a defect since
//     the order is already persisted;
//   - Confirmed clears the snapshot slot and returns the confirmation.
type SubmitOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	snapshots  ports.DraftSnapshotStore
	notifier   ports.Notifier
	receipts   ports.ReceiptGenerator
	log        *slog.Logger

	orderTemplateID string
	thankYouDelay   time.Duration
}

// NewSubmitOrderCommandHandler creates the submission pipeline handler.
// orderTemplateID names the relay template for the operator notification;
// thankYouDelay is how long the confirmation view is shown before the
// thank-you transition.
func NewSubmitOrderCommandHandler(
	uowFactory OrderUoWFactory,
	snapshots ports.DraftSnapshotStore,
	notifier ports.Notifier,
	receipts ports.ReceiptGenerator,
	log *slog.Logger,
	orderTemplateID string,
	thankYouDelay time.Duration,
) SubmitOrderCommandHandler {
	return SubmitOrderCommandHandler{
		uowFactory:      uowFactory,
		snapshots:       snapshots,
		notifier:        notifier,
		receipts:        receipts,
		log:             log,
		orderTemplateID: orderTemplateID,
		thankYouDelay:   thankYouDelay,
	}
}

// Handle processes one submission attempt for the given session.
func (h *SubmitOrderCommandHandler) Handle(
	ctx context.Context, sess *session.Session, cmd SubmitOrderCommand,
) (Confirmation, error) {
	if err := cmd.Validate(); err != nil {
		return Confirmation{}, err
	}

	// The draft reaches the slot on every submit attempt, authenticated or
	// not, so nothing entered so far can be lost.
	if err := h.snapshots.Save(ctx, cmd.SnapshotSlot(), cmd.Details()); err != nil {
		h.log.Warn("saving draft snapshot", "slot", cmd.SnapshotSlot(), "error", err)
	}

	identity, signedIn := sess.Current()
	if !signedIn {
		return Confirmation{}, ErrSignInRequired
	}

	state, err := Idle.StartValidating()
	if err != nil {
		return Confirmation{}, err
	}
	if err = order.ValidateDraft(cmd.Details()); err != nil {
		return Confirmation{}, err
	}

	if state, err = state.StartPersisting(); err != nil {
		return Confirmation{}, err
	}
	persisted, err := h.persist(ctx, identity, cmd)
	if err != nil {
		if _, failErr := state.Fail(); failErr != nil {
			return Confirmation{}, failErr
		}
		h.log.Error("persisting order", "orderId", cmd.OrderID().String(), "error", err)
		return Confirmation{}, ErrOrderPersistenceFailed
	}

	if state, err = state.StartNotifying(); err != nil {
		return Confirmation{}, err
	}
	go h.notifyOperator(context.WithoutCancel(ctx), persisted)

	if state, err = state.StartGeneratingReceipt(); err != nil {
		return Confirmation{}, err
	}
	receipt, err := h.receipts.Generate(persisted.Details(), persisted.ID(), persisted.TotalAmount())
	if err != nil {
		h.log.Error("generating receipt", "orderId", persisted.ID().String(), "error", err)
		return Confirmation{}, fmt.Errorf("generating receipt: %w", err)
	}

	if _, err = state.Confirm(); err != nil {
		return Confirmation{}, err
	}
	if err = h.snapshots.Clear(ctx, cmd.SnapshotSlot()); err != nil {
		h.log.Warn("clearing draft snapshot", "slot", cmd.SnapshotSlot(), "error", err)
	}

	return NewConfirmation(
		persisted.ID(), persisted.Details(), persisted.TotalAmount(), receipt, h.thankYouDelay,
	), nil
}

func (h *SubmitOrderCommandHandler) persist(
	ctx context.Context, identity session.Identity, cmd SubmitOrderCommand,
) (*order.Order, error) {
	aggregate, err := order.NewOrder(cmd.OrderID(), identity.UserID, cmd.Details())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}

// notifyOperator sends the operator email for a persisted order. Runs
// detached from the submission: the result is logged, never surfaced.
func (h *SubmitOrderCommandHandler) notifyOperator(ctx context.Context, persisted *order.Order) {
	err := h.notifier.Send(ctx, h.orderTemplateID, orderTemplateParams(persisted))
	if err != nil {
		h.log.Error("sending order notification",
			"orderId", persisted.ID().String(), "error", err)
		return
	}
	h.log.Info("order notification sent", "orderId", persisted.ID().String())
}

// orderTemplateParams flattens a persisted order into the relay's template
// variables. The relay substitutes flat keys only.
func orderTemplateParams(persisted *order.Order) map[string]string {
	d := persisted.Details()
	return map[string]string{
		"order_id":          persisted.ID().String(),
		"full_name":         d.FullName,
		"province":          d.Province,
		"district":          d.District,
		"postal_code":       d.PostalCode,
		"address_line1":     d.AddressLine1,
		"address_line2":     d.AddressLine2,
		"city":              d.City,
		"delivery_line1":    d.DeliveryLine1,
		"delivery_line2":    d.DeliveryLine2,
		"delivery_city":     d.DeliveryCity,
		"whatsapp_number":   d.WhatsappNumber,
		"package_size":      d.PackageSize,
		"number_of_bottles": strconv.Itoa(d.NumberOfBottles),
		"total_amount":      strconv.Itoa(persisted.TotalAmount()),
	}
}

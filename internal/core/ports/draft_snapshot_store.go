package ports

import (
	"context"
	"time"

	"pickleshop/internal/core/domain/model/order"
)

// DraftSnapshotStore is the durable slot for in-progress order drafts. Each
// client owns one named slot, written on every form mutation and cleared only
// after a confirmed submission.
type DraftSnapshotStore interface {
	// Save overwrites the slot with the current draft.
	Save(ctx context.Context, slot string, draft order.Draft) error

	// Load reads the draft stored in the slot.
	// Returns errs.ErrObjectNotFound when the slot is empty.
	Load(ctx context.Context, slot string) (order.Draft, error)

	// Clear removes the slot. Clearing an empty slot is not an error.
	Clear(ctx context.Context, slot string) error

	// PurgeOlderThan deletes every slot last written before the cutoff and
	// returns the number of slots removed.
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

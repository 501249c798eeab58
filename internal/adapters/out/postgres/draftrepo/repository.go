package draftrepo

import (
	"context"
	"errors"
	"time"

	"pickleshop/internal/core/domain/model/order"
	"pickleshop/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDraftSnapshotStore implements DraftSnapshotStore using GORM. Writes are
// slot upserts outside any unit of work: snapshot persistence is best-effort
// and must never participate in the order transaction.
type GormDraftSnapshotStore struct {
	db *gorm.DB
}

// NewGormDraftSnapshotStore creates a new GORM draft snapshot store.
func NewGormDraftSnapshotStore(db *gorm.DB) *GormDraftSnapshotStore {
	return &GormDraftSnapshotStore{db: db}
}

// Save overwrites the slot with the current draft.
func (s *GormDraftSnapshotStore) Save(ctx context.Context, slot string, draft order.Draft) error {
	if slot == "" {
		return errs.NewValueIsRequiredError("slot")
	}

	dto, err := fromDomain(slot, draft)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slot"}},
			DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
		}).
		Create(&dto).Error
}

// Load reads the draft stored in the slot.
func (s *GormDraftSnapshotStore) Load(ctx context.Context, slot string) (order.Draft, error) {
	if slot == "" {
		return order.Draft{}, errs.NewValueIsRequiredError("slot")
	}

	var dto SnapshotDTO
	if err := s.db.WithContext(ctx).First(&dto, "slot = ?", slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.Draft{}, errs.NewObjectNotFoundError("draftSnapshot", slot)
		}
		return order.Draft{}, err
	}

	return toDomain(dto)
}

// Clear removes the slot. Clearing an empty slot is not an error.
func (s *GormDraftSnapshotStore) Clear(ctx context.Context, slot string) error {
	if slot == "" {
		return errs.NewValueIsRequiredError("slot")
	}

	return s.db.WithContext(ctx).Delete(&SnapshotDTO{}, "slot = ?", slot).Error
}

// PurgeOlderThan deletes every slot last written before the cutoff.
func (s *GormDraftSnapshotStore) PurgeOlderThan(
	ctx context.Context, cutoff time.Time,
) (int64, error) {
	result := s.db.WithContext(ctx).Delete(&SnapshotDTO{}, "updated_at < ?", cutoff)
	return result.RowsAffected, result.Error
}

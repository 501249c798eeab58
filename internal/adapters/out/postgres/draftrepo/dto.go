// Package draftrepo persists draft snapshots: one row per client slot holding
// the serialized in-progress order draft.
package draftrepo

import (
	"encoding/json"
	"time"

	"pickleshop/internal/core/domain/model/order"
)

// SnapshotDTO represents the database structure for a draft snapshot slot.
// The payload is the draft serialized as JSON; UpdatedAt drives the stale
// snapshot purge.
type SnapshotDTO struct {
	Slot      string    `gorm:"primaryKey"`
	Payload   string    `gorm:"type:jsonb"`
	UpdatedAt time.Time `gorm:"index"`
}

// TableName specifies the database table name for draft snapshots.
func (SnapshotDTO) TableName() string {
	return "draft_snapshots"
}

// fromDomain serializes a draft into a snapshot row for the given slot.
func fromDomain(slot string, draft order.Draft) (SnapshotDTO, error) {
	payload, err := json.Marshal(draft)
	if err != nil {
		return SnapshotDTO{}, err
	}

	return SnapshotDTO{
		Slot:      slot,
		Payload:   string(payload),
		UpdatedAt: time.Now().UTC(),
	}, nil
}

// toDomain deserializes the stored payload back into a draft.
func toDomain(dto SnapshotDTO) (order.Draft, error) {
	var draft order.Draft
	if err := json.Unmarshal([]byte(dto.Payload), &draft); err != nil {
		return order.Draft{}, err
	}
	return draft, nil
}

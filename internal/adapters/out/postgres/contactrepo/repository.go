package contactrepo

import (
	"context"

	"pickleshop/internal/core/domain/model/contact"
	"pickleshop/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormContactMessageRepository implements ContactMessageRepository using GORM.
type GormContactMessageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormContactMessageRepository creates a new GORM contact-message repository.
func NewGormContactMessageRepository(db *gorm.DB, tracker aggregateTracker) *GormContactMessageRepository {
	return &GormContactMessageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new contact message to the database.
func (r *GormContactMessageRepository) Add(ctx context.Context, aggregate *contact.Message) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

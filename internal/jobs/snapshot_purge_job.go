package jobs

import (
	"context"
	"log/slog"
	"time"

	"pickleshop/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// SnapshotPurgeJob deletes draft snapshots that have not been written for
// longer than the configured TTL. Abandoned anonymous drafts would otherwise
// accumulate forever, since only a confirmed submission clears its slot.
type SnapshotPurgeJob struct {
	snapshots ports.DraftSnapshotStore
	ttl       time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewSnapshotPurgeJob creates a job that purges snapshots older than ttl.
func NewSnapshotPurgeJob(
	snapshots ports.DraftSnapshotStore, ttl time.Duration, logger *slog.Logger,
) *SnapshotPurgeJob {
	return &SnapshotPurgeJob{
		snapshots: snapshots,
		ttl:       ttl,
		cron:      cron.New(),
		logger:    logger.With("component", "snapshot_purge_job"),
	}
}

// Start schedules the purge to run at the top of every hour.
func (j *SnapshotPurgeJob) Start() error {
	_, err := j.cron.AddFunc("0 * * * *", j.runOnce)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Snapshot purge job started (running hourly)", "ttl", j.ttl.String())
	return nil
}

// Stop stops the snapshot purge job.
func (j *SnapshotPurgeJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Snapshot purge job stopped")
}

func (j *SnapshotPurgeJob) runOnce() {
	ctx := context.Background()
	cutoff := time.Now().UTC().Add(-j.ttl)

	purged, err := j.snapshots.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		j.logger.ErrorContext(ctx, "Snapshot purge failed", "error", err)
		return
	}

	if purged > 0 {
		j.logger.InfoContext(ctx, "Purged stale draft snapshots", "count", purged)
	}
}

package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pickleshop/internal/core/ports"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	snapshotPurgeJob *SnapshotPurgeJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	snapshots ports.DraftSnapshotStore,
	snapshotTTL time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		snapshotPurgeJob: NewSnapshotPurgeJob(snapshots, snapshotTTL, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.snapshotPurgeJob.Start(); err != nil {
		return fmt.Errorf("failed to start snapshot purge job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.snapshotPurgeJob.Stop()
}

package jobs

import (
	"fmt"
	"log/slog"

	"ordering/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	abandonedCartCleanupJob *AbandonedCartCleanupJob
}

func NewJobManager(
	expireAbandonedCartsHandler commands.ExpireAbandonedCartsCommandHandler,
	cleanupSettings AbandonedCartCleanupSettings,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		abandonedCartCleanupJob: NewAbandonedCartCleanupJob(expireAbandonedCartsHandler, cleanupSettings, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.abandonedCartCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start abandoned cart cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.abandonedCartCleanupJob.Stop()
}

package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"bookmarket/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orderFinalizationJob *OrderFinalizationJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	finalizeHandler commands.FinalizeDeliveredOrdersCommandHandler,
	finalizeGracePeriod time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderFinalizationJob: NewOrderFinalizationJob(finalizeHandler, finalizeGracePeriod, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orderFinalizationJob.Start(); err != nil {
		return fmt.Errorf("failed to start order finalization job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderFinalizationJob.Stop()
}

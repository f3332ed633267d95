package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderFinalizationJob completes delivered orders once their grace period has
// passed. Runs hourly; a conflicted order is simply picked up by a later run.
type OrderFinalizationJob struct {
	handler     commands.FinalizeDeliveredOrdersCommandHandler
	gracePeriod time.Duration
	cron        *cron.Cron
	logger      *slog.Logger
}

// NewOrderFinalizationJob creates a job that finalizes orders delivered more
// than gracePeriod ago.
func NewOrderFinalizationJob(
	handler commands.FinalizeDeliveredOrdersCommandHandler,
	gracePeriod time.Duration,
	logger *slog.Logger,
) *OrderFinalizationJob {
	return &OrderFinalizationJob{
		handler:     handler,
		gracePeriod: gracePeriod,
		cron:        cron.New(),
		logger:      logger.With("component", "order_finalization_job"),
	}
}

// Start begins the finalization job on an hourly schedule.
func (j *OrderFinalizationJob) Start() error {
	_, err := j.cron.AddFunc("@hourly", func() {
		ctx := context.Background()

		cmd, err := commands.NewFinalizeDeliveredOrdersCommand(time.Now().UTC().Add(-j.gracePeriod))
		if err != nil {
			j.logger.ErrorContext(ctx, "Order finalization job misconfigured", "error", err)
			return
		}

		finalized, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Order finalization job failed", "error", err)
			return
		}

		if finalized > 0 {
			j.logger.InfoContext(ctx, "Finalized delivered orders", "count", finalized)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order finalization job started (running hourly)")
	return nil
}

// Stop stops the finalization job.
func (j *OrderFinalizationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order finalization job stopped")
}

package jobs

import (
	"context"
	"log/slog"
	"time"

	"microshop/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleOrderCancellationJob periodically cancels orders that stayed in
// created status longer than the configured time-to-live. Runs every minute.
type StaleOrderCancellationJob struct {
	handler commands.CancelStaleOrdersCommandHandler
	ttl     time.Duration
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewStaleOrderCancellationJob creates a job that cancels stale orders.
// The ttl controls how long an order may stay in created status before the
// next run cancels it.
func NewStaleOrderCancellationJob(
	handler commands.CancelStaleOrdersCommandHandler,
	ttl time.Duration,
	logger *slog.Logger,
) *StaleOrderCancellationJob {
	return &StaleOrderCancellationJob{
		handler: handler,
		ttl:     ttl,
		cron:    cron.New(),
		logger:  logger.With("component", "stale_order_cancellation_job"),
	}
}

// Start begins the cancellation job to run every minute.
func (j *StaleOrderCancellationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCancelStaleOrdersCommand(j.ttl)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job misconfigured", "error", cmdErr)
			return
		}

		cancelled, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Stale order cancellation job failed", "error", handleErr)
			return
		}

		if cancelled > 0 {
			j.logger.InfoContext(ctx, "Cancelled stale orders", "count", cancelled, "ttl", j.ttl)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job started (running every minute)")
	return nil
}

// Stop stops the cancellation job.
func (j *StaleOrderCancellationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale order cancellation job stopped")
}

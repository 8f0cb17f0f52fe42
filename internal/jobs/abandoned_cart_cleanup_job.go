package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"ordering/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// abandonedCartExpirer is satisfied by commands.ExpireAbandonedCartsCommandHandler.
type abandonedCartExpirer interface {
	Handle(ctx context.Context, cmd commands.ExpireAbandonedCartsCommand) (int, error)
}

// AbandonedCartCleanupSettings controls how old a PENDING cart may get, how
// often the cleanup runs and how many carts one run may cancel.
type AbandonedCartCleanupSettings struct {
	TTL       time.Duration
	Schedule  string
	BatchSize int
}

// AbandonedCartCleanupJob cancels PENDING carts older than the TTL on a cron
// schedule. Cancelled carts never reserved stock, so inventory is untouched.
type AbandonedCartCleanupJob struct {
	handler  abandonedCartExpirer
	settings AbandonedCartCleanupSettings
	cron     *cron.Cron
	logger   *slog.Logger
	now      func() time.Time
}

func NewAbandonedCartCleanupJob(
	handler abandonedCartExpirer,
	settings AbandonedCartCleanupSettings,
	logger *slog.Logger,
) *AbandonedCartCleanupJob {
	return &AbandonedCartCleanupJob{
		handler:  handler,
		settings: settings,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "abandoned_cart_cleanup_job"),
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Start schedules the cleanup. The schedule uses the six-field cron format
// with seconds.
func (j *AbandonedCartCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.settings.Schedule, func() {
		j.RunOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("invalid cleanup schedule %q: %w", j.settings.Schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Abandoned cart cleanup job started",
		"schedule", j.settings.Schedule,
		"ttl", j.settings.TTL.String(),
		"batch_size", j.settings.BatchSize,
	)
	return nil
}

// RunOnce expires one batch and returns the number of cancelled carts.
func (j *AbandonedCartCleanupJob) RunOnce(ctx context.Context) int {
	cmd, err := commands.NewExpireAbandonedCartsCommand(j.now().Add(-j.settings.TTL), j.settings.BatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned cart cleanup misconfigured", "error", err)
		return 0
	}

	expired, err := j.handler.Handle(ctx, cmd)
	if err != nil {
		j.logger.ErrorContext(ctx, "Abandoned cart cleanup failed", "error", err, "expired", expired)
	}
	if expired > 0 {
		j.logger.InfoContext(ctx, "Abandoned carts expired", "count", expired)
	}

	return expired
}

// Stop waits for a running cleanup to finish.
func (j *AbandonedCartCleanupJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Abandoned cart cleanup job stopped")
}

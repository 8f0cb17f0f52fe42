// Package jobs provides scheduled background tasks for the ordering service.
//
// Jobs use github.com/robfig/cron/v3 with the six-field (seconds) format.
//
// # Available Jobs
//
// AbandonedCartCleanupJob cancels PENDING carts older than CART_TTL with the
// reason "abandoned cart". It runs on CART_CLEANUP_SCHEDULE and cancels at
// most CART_CLEANUP_BATCH carts per run.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(expireHandler, jobs.AbandonedCartCleanupSettings{
//		TTL:       24 * time.Hour,
//		Schedule:  "0 */5 * * * *",
//		BatchSize: 100,
//	}, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// Failed runs are logged and retried on the next tick.
package jobs

// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
//  1. CartExpiryJob - deletes carts whose time to live has passed (server side)
//  2. OrderRefreshJob - refetches the kitchen order list of a staff client
//
// # Usage
//
//	jobManager := jobs.NewJobManager(
//		jobs.NewCartExpiryJob(expireCartsHandler, "", logger),
//	)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// Job runs never stop the scheduler. Failures are logged and the next tick
// tries again. A job that fails to start stops the jobs started before it.
package jobs

package config

import (
	"storefront.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"sessionsweep": {Schedule: GetEnv("SESSION_SWEEP", "@every 5m"), Job: jobs.SessionSweepJob},
	// Add more jobs here
}

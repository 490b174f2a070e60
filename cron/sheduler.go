package cron

import (
	"log"

	"github.com/robfig/cron/v3"
	"storefront.GO/config"
)

func StartCron() *cron.Cron {
	c := cron.New()
	addJobs := func(jobMap map[string]config.CronJob) {
		for name, cronJob := range jobMap {
			jobFunc := cronJob.Job
			_, err := c.AddFunc(cronJob.Schedule, func() { jobFunc() })
			if err != nil {
				log.Fatalf("Failed to register job %s: %v", name, err)
			}
		}
	}
	addJobs(config.CronJobs)
	for name, j := range Jobs() {
		run := j.Run
		sched := j.Schedule
		_, err := c.AddFunc(sched, func() { run() })
		if err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}

// Lookup finds a job by name in config.CronJobs or the registry.
func Lookup(name string) (func(...string), bool) {
	if cronJob, ok := config.CronJobs[name]; ok {
		return cronJob.Job, true
	}
	if j, ok := Jobs()[name]; ok {
		return j.Run, true
	}
	return nil, false
}

// Names lists every known job with its schedule.
func Names() map[string]string {
	out := make(map[string]string)
	for name, j := range config.CronJobs {
		out[name] = j.Schedule
	}
	for name, j := range Jobs() {
		out[name] = j.Schedule
	}
	return out
}

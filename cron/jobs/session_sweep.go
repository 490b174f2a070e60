package jobs

import (
	"log"

	"storefront.GO/core/session"
)

// SessionSweepJob evicts expired shopper sessions from the in-process store. Redis
// sessions expire on their own and are not touched.
func SessionSweepJob(args ...string) {
	n := session.GetInstance().Sweep()
	if n > 0 {
		log.Printf("sessionsweep: removed %d expired sessions", n)
	}
}

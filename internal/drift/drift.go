// Package drift implements the Drift Detector: measuring how far behind
// schedule the plan is running.
package drift

import (
	"time"

	"github.com/rowanvale/dayforge/internal/models"
)

// Compute returns the largest overrun, in whole minutes, among incomplete
// tasks whose scheduled end has already passed. It is 0 when nothing is
// overrunning. Callers recompute once per minute to track drift live.
func Compute(tasks []models.Task, now time.Time) int {
	max := 0
	for _, t := range tasks {
		if t.Status == models.StatusDone || t.ScheduledEnd == nil {
			continue
		}
		if !t.ScheduledEnd.Before(now) {
			continue
		}
		overrun := int(now.Sub(*t.ScheduledEnd).Minutes())
		if overrun > max {
			max = overrun
		}
	}
	return max
}

package Compliance

import (
	"time"

	"RoutineMaster/Models"
)

// IsSatisfied reports whether the given user has completed the task
// within the task's current recurrence period. Only existence matters,
// not count, and a completion from before the period start never
// counts even when it is the most recent record for the pair. The
// period start itself is inclusive.
func IsSatisfied(task Models.Task, userID uint, completions []Models.TaskCompletion, now time.Time) bool {
	periodStart := PeriodStart(task.Frequency, now)
	for _, c := range completions {
		if c.TaskID == task.ID && c.UserID == userID && !c.CompletedAt.Before(periodStart) {
			return true
		}
	}
	return false
}

// LatestInPeriod returns the newest completion by the user for the
// task within the current period, or nil when the assignment is
// unsatisfied. Used by the routine view to show the recorded value.
func LatestInPeriod(task Models.Task, userID uint, completions []Models.TaskCompletion, now time.Time) *Models.TaskCompletion {
	periodStart := PeriodStart(task.Frequency, now)
	var latest *Models.TaskCompletion
	for i := range completions {
		c := &completions[i]
		if c.TaskID != task.ID || c.UserID != userID || c.CompletedAt.Before(periodStart) {
			continue
		}
		if latest == nil || c.CompletedAt.After(latest.CompletedAt) {
			latest = c
		}
	}
	return latest
}

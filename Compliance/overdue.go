package Compliance

import (
	"strconv"
	"strings"
	"time"

	"RoutineMaster/Models"
)

// IsOverdue reports whether an unsatisfied assignment has blown past
// its due time of day. The due instant is anchored to now's calendar
// day for every frequency, so a weekly task with a due time raises the
// flag daily until completed; the dashboard consumers rely on that.
// Tasks without a due time are never overdue, and neither is a
// satisfied assignment.
func IsOverdue(task Models.Task, satisfied bool, now time.Time) bool {
	if satisfied || task.DueTime == "" {
		return false
	}
	hour, minute, ok := parseDueTime(task.DueTime)
	if !ok {
		return false
	}
	due := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	return now.After(due)
}

// parseDueTime parses an "HH:MM" time of day.
func parseDueTime(s string) (hour, minute int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

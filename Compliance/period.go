package Compliance

import (
	"time"

	"RoutineMaster/Models"
)

// PeriodStart returns the start of the recurrence window containing now
// for the given frequency, in now's location:
//
//	HOURLY  - top of the current clock hour
//	DAILY   - 00:00 of the current day
//	WEEKLY  - 00:00 of the current week's Sunday
//	MONTHLY - 00:00 of the 1st of the current month
//	YEARLY  - 00:00 of January 1st of the current year
//
// An unrecognized frequency behaves like DAILY rather than failing; bad
// values are caught at data entry, not here.
func PeriodStart(frequency string, now time.Time) time.Time {
	switch frequency {
	case Models.FrequencyHourly:
		return time.Date(now.Year(), now.Month(), now.Day(), now.Hour(), 0, 0, 0, now.Location())
	case Models.FrequencyDaily:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case Models.FrequencyWeekly:
		// Sunday is day 0 of the week.
		dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return dayStart.AddDate(0, 0, -int(now.Weekday()))
	case Models.FrequencyMonthly:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	case Models.FrequencyYearly:
		return time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

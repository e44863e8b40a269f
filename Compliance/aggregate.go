package Compliance

import (
	"math"
	"sort"
	"time"

	"RoutineMaster/Models"
)

// FilterAll disables filtering on an axis.
const FilterAll = "ALL"

// Filters restricts the scored user set by exact shift and/or
// department match. Empty or "ALL" leaves an axis unrestricted. The
// pending count ignores filters entirely.
type Filters struct {
	Shift      string `json:"shift"`
	Department string `json:"department"`
}

func (f Filters) matches(u Models.User) bool {
	shiftOK := f.Shift == "" || f.Shift == FilterAll || u.Shift == f.Shift
	deptOK := f.Department == "" || f.Department == FilterAll || u.Department == f.Department
	return shiftOK && deptOK
}

// UserScore is one row of the discipline ranking.
type UserScore struct {
	UserID         uint   `json:"user_id"`
	Name           string `json:"name"`
	Title          string `json:"title"`
	Shift          string `json:"shift"`
	Department     string `json:"department"`
	Assigned       int    `json:"assigned"`
	Satisfied      int    `json:"satisfied"`
	Score          int    `json:"score"`
	CompletedTotal int    `json:"completed_total"`
}

// DailyBucket is one day of the production/scrap series.
type DailyBucket struct {
	Date       string  `json:"date"`
	Production float64 `json:"production"`
	Scrap      float64 `json:"scrap"`
}

// DashboardData is the aggregate result consumed by the dashboard.
type DashboardData struct {
	Scores       []UserScore   `json:"scores"`
	TopPerformer *UserScore    `json:"top_performer"`
	OverallRate  int           `json:"overall_rate"`
	PendingCount int           `json:"pending_count"`
	DailySeries  []DailyBucket `json:"daily_series"`
}

// Aggregate folds entity snapshots into the dashboard result. Inputs
// are never mutated; callers may share snapshots across concurrent
// calls.
func Aggregate(users []Models.User, tasks []Models.Task, completions []Models.TaskCompletion, logs []Models.OperationalLog, filters Filters, now time.Time) DashboardData {
	data := DashboardData{
		PendingCount: pendingCount(tasks, completions, now),
		DailySeries:  dailySeries(logs, now),
	}

	for _, user := range users {
		if !filters.matches(user) {
			continue
		}
		row := UserScore{
			UserID:     user.ID,
			Name:       user.Name,
			Title:      user.Title,
			Shift:      user.Shift,
			Department: user.Department,
		}
		for _, task := range tasks {
			if !task.IsAssignedTo(user.ID) {
				continue
			}
			row.Assigned++
			if IsSatisfied(task, user.ID, completions, now) {
				row.Satisfied++
			}
		}
		if row.Assigned > 0 {
			row.Score = int(math.Round(float64(row.Satisfied) / float64(row.Assigned) * 100))
		}
		for _, c := range completions {
			if c.UserID == user.ID {
				row.CompletedTotal++
			}
		}
		data.Scores = append(data.Scores, row)
	}

	// Rank descending; ties keep encounter order.
	sort.SliceStable(data.Scores, func(i, j int) bool {
		return data.Scores[i].Score > data.Scores[j].Score
	})

	if len(data.Scores) > 0 {
		total := 0
		for _, row := range data.Scores {
			total += row.Score
		}
		data.OverallRate = int(math.Round(float64(total) / float64(len(data.Scores))))
		if data.Scores[0].Score > 0 {
			top := data.Scores[0]
			data.TopPerformer = &top
		}
	}

	return data
}

// pendingCount counts outstanding assignment-periods over the full
// task/user universe, one per unsatisfied (task, assignee) pair.
func pendingCount(tasks []Models.Task, completions []Models.TaskCompletion, now time.Time) int {
	pending := 0
	for _, task := range tasks {
		for _, userID := range task.AssignedIDs() {
			if !IsSatisfied(task, userID, completions, now) {
				pending++
			}
		}
	}
	return pending
}

// dailySeries buckets PRODUCTION and SCRAP log values into the seven
// calendar days ending at now, oldest first. Each bucket covers
// [00:00, 24:00) of its day; other log types are excluded.
func dailySeries(logs []Models.OperationalLog, now time.Time) []DailyBucket {
	series := make([]DailyBucket, 0, 7)
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		dayEnd := dayStart.AddDate(0, 0, 1)

		bucket := DailyBucket{Date: dayStart.Format("2006-01-02")}
		for _, entry := range logs {
			if entry.Timestamp.Before(dayStart) || !entry.Timestamp.Before(dayEnd) {
				continue
			}
			switch entry.LogType {
			case Models.LogProduction:
				bucket.Production += entry.Value
			case Models.LogScrap:
				bucket.Scrap += entry.Value
			}
		}
		series = append(series, bucket)
	}
	return series
}

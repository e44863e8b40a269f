package Compliance

import (
	"testing"
	"time"

	"RoutineMaster/Models"
	"gorm.io/gorm"
)

func makeUser(id uint, name, shift, department string) Models.User {
	return Models.User{
		Model:      gorm.Model{ID: id},
		Name:       name,
		Role:       Models.RoleOperator,
		Shift:      shift,
		Department: department,
	}
}

func assignedTask(id uint, frequency string, userIDs ...uint) Models.Task {
	task := makeTask(id, frequency)
	task.SetAssignedIDs(userIDs)
	return task
}

func TestAggregateScoresAndPending(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)

	users := []Models.User{
		makeUser(1, "A", "Morning", "Production"),
		makeUser(2, "B", "Morning", "Production"),
		makeUser(3, "C", "Night", "Maintenance"),
	}
	tasks := []Models.Task{
		assignedTask(10, Models.FrequencyDaily, 1, 2, 3),
		assignedTask(11, Models.FrequencyDaily, 1, 2, 3),
	}
	// A completes both this period, B completes one, C completes none.
	completions := []Models.TaskCompletion{
		makeCompletion(10, 1, now),
		makeCompletion(11, 1, now),
		makeCompletion(10, 2, now),
	}

	data := Aggregate(users, tasks, completions, nil, Filters{}, now)

	wantScores := map[string]int{"A": 100, "B": 50, "C": 0}
	if len(data.Scores) != 3 {
		t.Fatalf("got %d score rows, want 3", len(data.Scores))
	}
	for _, row := range data.Scores {
		if row.Score != wantScores[row.Name] {
			t.Errorf("score for %s = %d, want %d", row.Name, row.Score, wantScores[row.Name])
		}
	}
	if data.Scores[0].Name != "A" {
		t.Errorf("ranking should place A first, got %s", data.Scores[0].Name)
	}
	if data.OverallRate != 50 {
		t.Errorf("overall rate = %d, want 50", data.OverallRate)
	}
	// 6 assignment-periods, 3 satisfied.
	if data.PendingCount != 3 {
		t.Errorf("pending count = %d, want 3", data.PendingCount)
	}
	if data.TopPerformer == nil || data.TopPerformer.Name != "A" {
		t.Errorf("top performer = %+v, want A", data.TopPerformer)
	}
}

func TestAggregateNoTopPerformerAtZero(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)
	users := []Models.User{makeUser(1, "A", "", "")}
	tasks := []Models.Task{assignedTask(10, Models.FrequencyDaily, 1)}

	data := Aggregate(users, tasks, nil, nil, Filters{}, now)
	if data.TopPerformer != nil {
		t.Errorf("no user with score > 0, top performer should be nil, got %+v", data.TopPerformer)
	}
}

func TestAggregateUserWithoutAssignmentsScoresZero(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)
	users := []Models.User{makeUser(1, "A", "", "")}

	data := Aggregate(users, nil, nil, nil, Filters{}, now)
	if len(data.Scores) != 1 || data.Scores[0].Score != 0 {
		t.Errorf("unassigned user should score 0, got %+v", data.Scores)
	}
}

func TestAggregateFilters(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)

	users := []Models.User{
		makeUser(1, "A", "Morning", "Production"),
		makeUser(2, "B", "Night", "Maintenance"),
	}
	tasks := []Models.Task{assignedTask(10, Models.FrequencyDaily, 1, 2)}
	completions := []Models.TaskCompletion{makeCompletion(10, 1, now)}

	morning := Aggregate(users, tasks, completions, nil, Filters{Shift: "Morning"}, now)
	if len(morning.Scores) != 1 || morning.Scores[0].Name != "A" {
		t.Fatalf("shift filter should keep only A, got %+v", morning.Scores)
	}
	if morning.OverallRate != 100 {
		t.Errorf("filtered overall rate = %d, want 100", morning.OverallRate)
	}
	// Pending is computed over the unfiltered universe: B is still missing.
	if morning.PendingCount != 1 {
		t.Errorf("pending count = %d, want 1 regardless of filters", morning.PendingCount)
	}

	all := Aggregate(users, tasks, completions, nil, Filters{Shift: FilterAll, Department: FilterAll}, now)
	if len(all.Scores) != 2 {
		t.Errorf("ALL filter should keep everyone, got %d rows", len(all.Scores))
	}

	none := Aggregate(users, tasks, completions, nil, Filters{Department: "Logistics"}, now)
	if len(none.Scores) != 0 || none.OverallRate != 0 {
		t.Errorf("non-matching filter should yield empty scores and rate 0, got %+v", none)
	}
}

func TestAggregateDailySeries(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)

	// Day 3 of the window (four days back from now).
	day3 := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.Local)
	logs := []Models.OperationalLog{
		{UserID: 1, LogType: Models.LogProduction, Value: 100, Timestamp: day3},
		{UserID: 1, LogType: Models.LogScrap, Value: 5, Timestamp: day3},
		// Downtime is tracked elsewhere and must not leak into the series.
		{UserID: 1, LogType: Models.LogDowntime, Value: 60, Timestamp: day3},
		// Outside the 7-day window entirely.
		{UserID: 1, LogType: Models.LogProduction, Value: 999, Timestamp: now.AddDate(0, 0, -10)},
	}

	data := Aggregate(nil, nil, nil, logs, Filters{}, now)
	if len(data.DailySeries) != 7 {
		t.Fatalf("series length = %d, want 7", len(data.DailySeries))
	}
	if data.DailySeries[0].Date != "2024-03-07" || data.DailySeries[6].Date != "2024-03-13" {
		t.Errorf("series should run oldest to newest, got %s .. %s",
			data.DailySeries[0].Date, data.DailySeries[6].Date)
	}
	for _, bucket := range data.DailySeries {
		if bucket.Date == "2024-03-10" {
			if bucket.Production != 100 || bucket.Scrap != 5 {
				t.Errorf("day 3 bucket = %+v, want production=100 scrap=5", bucket)
			}
		} else if bucket.Production != 0 || bucket.Scrap != 0 {
			t.Errorf("bucket %s should be empty, got %+v", bucket.Date, bucket)
		}
	}
}

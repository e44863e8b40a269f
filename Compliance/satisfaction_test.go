package Compliance

import (
	"testing"
	"time"

	"RoutineMaster/Models"

	"gorm.io/gorm"
)

func makeTask(id uint, frequency string) Models.Task {
	return Models.Task{Model: gorm.Model{ID: id}, Title: "task", Frequency: frequency}
}

func makeCompletion(taskID, userID uint, at time.Time) Models.TaskCompletion {
	return Models.TaskCompletion{
		TaskID:      taskID,
		UserID:      userID,
		CompletedAt: at,
		Status:      Models.StatusCompleted,
	}
}

func TestIsSatisfied(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)
	task := makeTask(1, Models.FrequencyDaily)

	tests := []struct {
		name        string
		completions []Models.TaskCompletion
		want        bool
	}{
		{"no records", nil, false},
		{
			"completion at now",
			[]Models.TaskCompletion{makeCompletion(1, 7, now)},
			true,
		},
		{
			"completion exactly at period start counts",
			[]Models.TaskCompletion{makeCompletion(1, 7, PeriodStart(Models.FrequencyDaily, now))},
			true,
		},
		{
			"yesterday's completion does not count today",
			[]Models.TaskCompletion{makeCompletion(1, 7, now.AddDate(0, 0, -1))},
			false,
		},
		{
			"other user's completion does not count",
			[]Models.TaskCompletion{makeCompletion(1, 8, now)},
			false,
		},
		{
			"other task's completion does not count",
			[]Models.TaskCompletion{makeCompletion(2, 7, now)},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsSatisfied(task, 7, tt.completions, now); got != tt.want {
				t.Errorf("IsSatisfied = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsSatisfiedForgetsPreviousPeriods(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 30, 0, 0, time.Local)

	// A completion one full period before the current period start must
	// never satisfy the assignment, for any frequency.
	periods := map[string]func(time.Time) time.Time{
		Models.FrequencyHourly:  func(s time.Time) time.Time { return s.Add(-time.Hour) },
		Models.FrequencyDaily:   func(s time.Time) time.Time { return s.AddDate(0, 0, -1) },
		Models.FrequencyWeekly:  func(s time.Time) time.Time { return s.AddDate(0, 0, -7) },
		Models.FrequencyMonthly: func(s time.Time) time.Time { return s.AddDate(0, -1, 0) },
		Models.FrequencyYearly:  func(s time.Time) time.Time { return s.AddDate(-1, 0, 0) },
	}

	for frequency, previous := range periods {
		task := makeTask(1, frequency)
		start := PeriodStart(frequency, now)
		completions := []Models.TaskCompletion{makeCompletion(1, 7, previous(start))}
		if IsSatisfied(task, 7, completions, now) {
			t.Errorf("%s: completion one period back should not satisfy", frequency)
		}
	}
}

func TestLatestInPeriod(t *testing.T) {
	now := time.Date(2024, time.March, 13, 14, 0, 0, 0, time.Local)
	task := makeTask(1, Models.FrequencyDaily)

	early := makeCompletion(1, 7, now.Add(-4*time.Hour))
	late := makeCompletion(1, 7, now.Add(-1*time.Hour))
	stale := makeCompletion(1, 7, now.AddDate(0, 0, -2))
	completions := []Models.TaskCompletion{stale, early, late}

	got := LatestInPeriod(task, 7, completions, now)
	if got == nil || !got.CompletedAt.Equal(late.CompletedAt) {
		t.Fatalf("LatestInPeriod = %+v, want completion at %v", got, late.CompletedAt)
	}

	if got := LatestInPeriod(task, 7, []Models.TaskCompletion{stale}, now); got != nil {
		t.Errorf("stale completion should yield nil, got %+v", got)
	}
}

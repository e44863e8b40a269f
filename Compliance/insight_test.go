package Compliance

import (
	"strings"
	"testing"
	"time"

	"RoutineMaster/Models"
)

func TestInsightCounters(t *testing.T) {
	at := time.Date(2024, time.March, 13, 9, 0, 0, 0, time.Local)

	logs := []Models.OperationalLog{
		{LogType: Models.LogScrap, Value: 5, Description: "Bad batch", Timestamp: at},
		{LogType: Models.LogScrap, Value: 3, Description: "Trimming waste", Timestamp: at},
		{LogType: Models.LogDowntime, Value: 45, Description: "Press jam", Timestamp: at},
		{LogType: Models.LogProduction, Value: 400, Description: "Line 1 output", Timestamp: at},
		{LogType: Models.LogOccurrence, Value: 1, Description: "Near miss", Timestamp: at},
	}
	completions := []Models.TaskCompletion{
		{Status: Models.StatusCompleted},
		{Status: Models.StatusCompleted},
		{Status: Models.StatusMissed},
		{Status: Models.StatusLate},
	}

	data := InsightCounters(logs, completions)

	if data.TotalScrap != 8 {
		t.Errorf("total scrap = %g, want 8", data.TotalScrap)
	}
	if data.TotalDowntime != 45 {
		t.Errorf("total downtime = %g, want 45", data.TotalDowntime)
	}
	if data.Completed != 2 || data.Missed != 1 {
		t.Errorf("completed/missed = %d/%d, want 2/1", data.Completed, data.Missed)
	}
	if len(data.RecentLogs) != 5 {
		t.Fatalf("recent logs = %d entries, want 5", len(data.RecentLogs))
	}
	if !strings.Contains(data.RecentLogs[4], "Near miss") {
		t.Errorf("last recent log should be the newest entry, got %q", data.RecentLogs[4])
	}
}

func TestInsightCountersCapsRecentLogsAtFive(t *testing.T) {
	var logs []Models.OperationalLog
	for i := 0; i < 8; i++ {
		logs = append(logs, Models.OperationalLog{
			LogType:     Models.LogOccurrence,
			Description: "entry",
			Timestamp:   time.Now(),
		})
	}
	data := InsightCounters(logs, nil)
	if len(data.RecentLogs) != 5 {
		t.Errorf("recent logs = %d entries, want 5", len(data.RecentLogs))
	}
}

func TestInsightCountersEmptyInputs(t *testing.T) {
	data := InsightCounters(nil, nil)
	if data.TotalScrap != 0 || data.TotalDowntime != 0 || data.Completed != 0 || data.Missed != 0 {
		t.Errorf("empty inputs should yield zero counters, got %+v", data)
	}
	if len(data.RecentLogs) != 0 {
		t.Errorf("empty inputs should yield no recent logs, got %v", data.RecentLogs)
	}
}

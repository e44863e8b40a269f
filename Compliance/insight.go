package Compliance

import (
	"fmt"

	"RoutineMaster/Models"
)

// InsightData carries the aggregate counters handed to the action-plan
// generator. The generator formats them into a prompt; nothing here
// touches the network.
type InsightData struct {
	TotalScrap    float64  `json:"total_scrap"`
	TotalDowntime float64  `json:"total_downtime"`
	Completed     int      `json:"completed"`
	Missed        int      `json:"missed"`
	RecentLogs    []string `json:"recent_logs"`
}

// InsightCounters folds logs and completions into the counters plus
// the five most recent log descriptions (input order is assumed
// chronological, as returned by the store).
func InsightCounters(logs []Models.OperationalLog, completions []Models.TaskCompletion) InsightData {
	data := InsightData{}
	for _, entry := range logs {
		switch entry.LogType {
		case Models.LogScrap:
			data.TotalScrap += entry.Value
		case Models.LogDowntime:
			data.TotalDowntime += entry.Value
		}
	}
	for _, c := range completions {
		switch c.Status {
		case Models.StatusCompleted:
			data.Completed++
		case Models.StatusMissed:
			data.Missed++
		}
	}

	start := len(logs) - 5
	if start < 0 {
		start = 0
	}
	for _, entry := range logs[start:] {
		data.RecentLogs = append(data.RecentLogs,
			fmt.Sprintf("- [%s] %s (Value: %g)", entry.LogType, entry.Description, entry.Value))
	}
	return data
}

package CronJobs

import (
	"fmt"
	"log"
	"strings"
	"time"

	"RoutineMaster/Compliance"
	"RoutineMaster/Models"
	"RoutineMaster/Slack"
	"RoutineMaster/email"

	"github.com/robfig/cron/v3"
)

// ComplianceChecker runs the scheduled morning compliance summary
type ComplianceChecker struct {
	cronScheduler  *cron.Cron
	runImmediately bool
	jobID          cron.EntryID
}

// NewComplianceChecker creates a new compliance checker
func NewComplianceChecker(runImmediately bool) *ComplianceChecker {
	return &ComplianceChecker{
		cronScheduler:  cron.New(cron.WithSeconds()),
		runImmediately: runImmediately,
	}
}

// Start schedules the daily compliance summary
func (s *ComplianceChecker) Start() error {
	var err error
	s.jobID, err = s.cronScheduler.AddFunc("0 0 6 * * *", func() {
		log.Println("Running scheduled daily compliance check")
		s.runComplianceCheck()
	})
	if err != nil {
		return fmt.Errorf("error scheduling cron job: %w", err)
	}

	s.cronScheduler.Start()
	log.Println("Compliance check scheduler started - will run daily at 6:00 AM")

	if s.runImmediately {
		log.Println("Running initial compliance check")
		s.runComplianceCheck()
	}

	return nil
}

// Stop terminates the compliance checker
func (s *ComplianceChecker) Stop() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
		log.Println("Compliance check scheduler stopped")
	}
}

// UpdateSchedule changes the schedule of the compliance checker
// Format: "0 0 6 * * *" = At 06:00:00 AM every day
func (s *ComplianceChecker) UpdateSchedule(schedule string) error {
	s.cronScheduler.Remove(s.jobID)

	var err error
	s.jobID, err = s.cronScheduler.AddFunc(schedule, func() {
		log.Println("Running scheduled compliance check")
		s.runComplianceCheck()
	})
	if err != nil {
		return fmt.Errorf("error updating schedule: %w", err)
	}

	log.Printf("Compliance check schedule updated to: %s\n", schedule)
	return nil
}

// RunManualCheck executes a manual compliance check
func (s *ComplianceChecker) RunManualCheck() {
	log.Println("Running manual compliance check")
	s.runComplianceCheck()
}

// runComplianceCheck aggregates the current snapshot and fans the
// summary out to the configured channels.
func (s *ComplianceChecker) runComplianceCheck() {
	var users []Models.User
	var tasks []Models.Task
	var completions []Models.TaskCompletion
	var logs []Models.OperationalLog

	if err := Models.DB.Find(&users).Error; err != nil {
		log.Printf("Error loading users for compliance check: %v", err)
		return
	}
	if err := Models.DB.Find(&tasks).Error; err != nil {
		log.Printf("Error loading tasks for compliance check: %v", err)
		return
	}
	if err := Models.DB.Find(&completions).Error; err != nil {
		log.Printf("Error loading completions for compliance check: %v", err)
		return
	}
	if err := Models.DB.Order("timestamp ASC").Find(&logs).Error; err != nil {
		log.Printf("Error loading logs for compliance check: %v", err)
		return
	}

	data := Compliance.Aggregate(users, tasks, completions, logs, Compliance.Filters{}, time.Now())
	summary := buildSummary(data)
	log.Printf("Compliance check completed: %d pending, overall rate %d%%", data.PendingCount, data.OverallRate)

	if err := Slack.PostComplianceSummary(summary); err != nil {
		log.Printf("Error posting compliance summary to Slack: %v", err)
	}
	if err := email.SendComplianceReport("Daily Compliance Summary", summary); err != nil {
		log.Printf("Error emailing compliance summary: %v", err)
	}
}

// buildSummary formats the aggregate result as a plain-text report.
func buildSummary(data Compliance.DashboardData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Daily Compliance Summary - %s\n\n", time.Now().Format("January 2, 2006")))
	b.WriteString(fmt.Sprintf("Overall compliance rate: %d%%\n", data.OverallRate))
	b.WriteString(fmt.Sprintf("Pending assignments: %d\n", data.PendingCount))

	if data.TopPerformer != nil {
		b.WriteString(fmt.Sprintf("Top performer: %s (%d%%)\n", data.TopPerformer.Name, data.TopPerformer.Score))
	}

	var laggards []string
	for _, row := range data.Scores {
		if row.Assigned > 0 && row.Score < 50 {
			laggards = append(laggards, fmt.Sprintf("%s (%d%%)", row.Name, row.Score))
		}
	}
	if len(laggards) > 0 {
		b.WriteString(fmt.Sprintf("Below 50%%: %s\n", strings.Join(laggards, ", ")))
	}

	return b.String()
}

package Controllers

import (
	"time"

	"RoutineMaster/Compliance"
	"RoutineMaster/Models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// DashboardController handles compliance dashboard endpoints
type DashboardController struct {
	DB *gorm.DB
}

// NewDashboardController creates a new DashboardController
func NewDashboardController(db *gorm.DB) *DashboardController {
	return &DashboardController{DB: db}
}

// snapshot reads full entity collections in one place so every
// aggregate call works from a consistent set of slices.
func (d *DashboardController) snapshot() (users []Models.User, tasks []Models.Task, completions []Models.TaskCompletion, logs []Models.OperationalLog, err error) {
	if err = d.DB.Find(&users).Error; err != nil {
		return
	}
	if err = d.DB.Find(&tasks).Error; err != nil {
		return
	}
	if err = d.DB.Order("completed_at ASC").Find(&completions).Error; err != nil {
		return
	}
	err = d.DB.Order("timestamp ASC").Find(&logs).Error
	return
}

// GetDashboard returns the ranking, rates, pending count and 7-day
// production series, optionally filtered by shift/department.
func (d *DashboardController) GetDashboard(ctx *fiber.Ctx) error {
	users, tasks, completions, logs, err := d.snapshot()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load dashboard data"})
	}

	filters := Compliance.Filters{
		Shift:      ctx.Query("shift", Compliance.FilterAll),
		Department: ctx.Query("department", Compliance.FilterAll),
	}

	data := Compliance.Aggregate(users, tasks, completions, logs, filters, time.Now())

	var shifts, departments []string
	d.DB.Model(&Models.User{}).Where("shift <> ''").Distinct().Pluck("shift", &shifts)
	d.DB.Model(&Models.User{}).Where("department <> ''").Distinct().Pluck("department", &departments)

	return ctx.JSON(fiber.Map{
		"scores":        data.Scores,
		"top_performer": data.TopPerformer,
		"overall_rate":  data.OverallRate,
		"pending_count": data.PendingCount,
		"daily_series":  data.DailySeries,
		"shifts":        shifts,
		"departments":   departments,
	})
}

// RoutineEntry is one row of a user's work list.
type RoutineEntry struct {
	Task        Models.Task            `json:"task"`
	Satisfied   bool                   `json:"satisfied"`
	Overdue     bool                   `json:"overdue"`
	Completion  *Models.TaskCompletion `json:"completion"`
	RangeStatus Compliance.RangeStatus `json:"range_status"`
}

// GetRoutine returns the acting user's assigned tasks with their
// period status for the work list view.
func (d *DashboardController) GetRoutine(ctx *fiber.Ctx) error {
	user, ok := ctx.Locals("user").(Models.User)
	if !ok {
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"message": "Not Logged In."})
	}

	var tasks []Models.Task
	if err := d.DB.Find(&tasks).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load tasks"})
	}
	var completions []Models.TaskCompletion
	if err := d.DB.Where("user_id = ?", user.ID).Find(&completions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load completions"})
	}

	now := time.Now()
	entries := []RoutineEntry{}
	done := 0
	for _, task := range tasks {
		if !task.IsAssignedTo(user.ID) {
			continue
		}
		satisfied := Compliance.IsSatisfied(task, user.ID, completions, now)
		completion := Compliance.LatestInPeriod(task, user.ID, completions, now)
		if satisfied {
			done++
		}
		entries = append(entries, RoutineEntry{
			Task:        task,
			Satisfied:   satisfied,
			Overdue:     Compliance.IsOverdue(task, satisfied, now),
			Completion:  completion,
			RangeStatus: Compliance.CompletionRange(task, completion),
		})
	}

	return ctx.JSON(fiber.Map{
		"entries":   entries,
		"completed": done,
		"total":     len(entries),
	})
}

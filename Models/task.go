package Models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Recurrence frequencies. A task must be completed once per period;
// the period boundaries are computed by the Compliance package.
const (
	FrequencyHourly  = "HOURLY"
	FrequencyDaily   = "DAILY"
	FrequencyWeekly  = "WEEKLY"
	FrequencyMonthly = "MONTHLY"
	FrequencyYearly  = "YEARLY"
)

// Task kinds. MEASUREMENT tasks require a numeric reading on completion.
const (
	KindChecklist   = "CHECKLIST"
	KindMeasurement = "MEASUREMENT"
)

// Completion statuses. Only COMPLETED is written by the completion
// endpoint today; MISSED and LATE are reserved for backfill tooling.
const (
	StatusCompleted = "COMPLETED"
	StatusMissed    = "MISSED"
	StatusLate      = "LATE"
)

type Task struct {
	gorm.Model
	Title       string `json:"title" gorm:"not null"`
	Description string `json:"description"`
	Frequency   string `json:"frequency" gorm:"not null;default:DAILY"`
	Kind        string `json:"kind" gorm:"not null;default:CHECKLIST"`
	// DueTime is an optional "HH:MM" time of day, empty when the task
	// has no deadline within its period.
	DueTime string   `json:"due_time"`
	Unit    string   `json:"unit"`
	MinVal  *float64 `json:"min_val"`
	MaxVal  *float64 `json:"max_val"`
	// JSONAssignedTo holds the assigned user ids marshalled as a JSON
	// array so the assignment list travels with the row.
	JSONAssignedTo datatypes.JSON `json:"assigned_to_ids"`
}

// AssignedIDs unmarshals the assignment list. A corrupt or empty
// column yields an empty list, never an error.
func (t *Task) AssignedIDs() []uint {
	var ids []uint
	if len(t.JSONAssignedTo) == 0 {
		return ids
	}
	if err := json.Unmarshal(t.JSONAssignedTo, &ids); err != nil {
		return nil
	}
	return ids
}

// SetAssignedIDs marshals the assignment list onto the row.
func (t *Task) SetAssignedIDs(ids []uint) error {
	data, err := json.Marshal(ids)
	if err != nil {
		return err
	}
	t.JSONAssignedTo = data
	return nil
}

// IsAssignedTo reports whether the task is assigned to the given user.
func (t *Task) IsAssignedTo(userID uint) bool {
	for _, id := range t.AssignedIDs() {
		if id == userID {
			return true
		}
	}
	return false
}

type TaskCompletion struct {
	gorm.Model
	TaskID        uint      `json:"task_id" gorm:"not null;index"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	CompletedAt   time.Time `json:"completed_at" gorm:"not null;index"`
	Status        string    `json:"status" gorm:"not null;default:COMPLETED"`
	MeasuredValue *float64  `json:"measured_value"`
	Notes         string    `json:"notes"`
}

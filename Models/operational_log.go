package Models

import (
	"time"

	"gorm.io/gorm"
)

// Operational log types. PRODUCTION and SCRAP feed the daily production
// series; DOWNTIME and OCCURRENCE feed the insight counters only.
const (
	LogProduction = "PRODUCTION"
	LogScrap      = "SCRAP"
	LogDowntime   = "DOWNTIME"
	LogOccurrence = "OCCURRENCE"
)

type OperationalLog struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	LogType     string    `json:"log_type" gorm:"not null;index"`
	Value       float64   `json:"value"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null;index"`
}

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedRun records one apply of a generated script.
type SeedRun struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primaryKey" json:"id"`
	Dialect    string         `gorm:"size:20;not null" json:"dialect"`
	Status     string         `gorm:"size:20;not null;index" json:"status"`
	Statements int            `json:"statements"`
	Counts     datatypes.JSON `json:"counts"`
	Error      string         `gorm:"type:text" json:"error"`
	StartedAt  time.Time      `gorm:"not null" json:"started_at"`
	FinishedAt *time.Time     `json:"finished_at"`
}

func (SeedRun) TableName() string { return "seed_runs" }

// SeedRunLog stores WARN+ log records emitted while a run was in progress.
type SeedRunLog struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primaryKey" json:"id"`
	RunID     string         `gorm:"size:36;index" json:"run_id"`
	Timestamp time.Time      `gorm:"not null;index" json:"timestamp"`
	Level     string         `gorm:"size:10;not null" json:"level"`
	Message   string         `gorm:"type:text" json:"message"`
	Table     string         `gorm:"column:table_name;size:50" json:"table"`
	Error     string         `gorm:"type:text" json:"error"`
	Extra     datatypes.JSON `json:"extra"`
}

func (SeedRunLog) TableName() string { return "seed_run_logs" }

package database

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pumpshop/seed/internal/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	RunRunning   = "running"
	RunSucceeded = "succeeded"
	RunFailed    = "failed"
)

// StartRun inserts a running SeedRun row.
func StartRun(db *gorm.DB, dialect string) (*models.SeedRun, error) {
	run := &models.SeedRun{
		ID:        uuid.New(),
		Dialect:   dialect,
		Status:    RunRunning,
		StartedAt: time.Now().UTC(),
	}
	if err := db.Create(run).Error; err != nil {
		return nil, fmt.Errorf("failed to record seed run: %w", err)
	}
	return run, nil
}

// FinishRun stamps the outcome of run. A nil runErr marks it succeeded.
func FinishRun(db *gorm.DB, run *models.SeedRun, statements int, counts map[string]int, runErr error) error {
	now := time.Now().UTC()
	run.FinishedAt = &now
	run.Statements = statements
	run.Status = RunSucceeded
	if runErr != nil {
		run.Status = RunFailed
		run.Error = runErr.Error()
	}
	if counts != nil {
		b, err := json.Marshal(counts)
		if err != nil {
			return fmt.Errorf("failed to encode run counts: %w", err)
		}
		run.Counts = datatypes.JSON(b)
	}
	if err := db.Save(run).Error; err != nil {
		return fmt.Errorf("failed to update seed run: %w", err)
	}
	return nil
}

// RecentRuns lists the latest runs, newest first.
func RecentRuns(db *gorm.DB, limit int) ([]models.SeedRun, error) {
	var runs []models.SeedRun
	if err := db.Order("started_at desc").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list seed runs: %w", err)
	}
	return runs, nil
}

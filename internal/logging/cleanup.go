package logging

import (
	"log/slog"
	"time"

	"github.com/pumpshop/seed/internal/models"
	"gorm.io/gorm"
)

// PruneRunLogs deletes seed_run_logs older than retention and returns the
// number of rows removed.
func PruneRunLogs(db *gorm.DB, retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := db.Where("timestamp < ?", cutoff).Delete(&models.SeedRunLog{})
	if result.Error != nil {
		return 0, result.Error
	}
	if result.RowsAffected > 0 {
		slog.Info("run log cleanup completed", "deleted", result.RowsAffected)
	}
	return result.RowsAffected, nil
}

package database

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/seed"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ErrIntegrity = errors.New("seeded data failed integrity check")

// Open connects to the configured database. gorm's own logger goes to
// stderr so it never mixes with a script written to stdout.
func Open(cfg *config.Config) (*gorm.DB, error) {
	dialect, err := seed.ParseDialect(cfg.DBDialect)
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	switch dialect {
	case seed.Postgres:
		dialector = postgres.Open(cfg.DSN())
	case seed.SQLite:
		dialector = sqlite.Open(cfg.DSN())
	default:
		dialector = mysql.Open(cfg.DSN())
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.New(log.New(os.Stderr, "\r\n", log.LstdFlags), logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}

	if dialect == seed.SQLite {
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetMaxIdleConns(5)
	}
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	slog.Info("database connected", "dialect", dialect)
	return db, nil
}

// Migrate provisions the target tables plus the run bookkeeping tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.SchemaModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return MigrateRuns(db)
}

// MigrateRuns provisions only seed_runs and seed_run_logs, for databases
// whose schema is managed elsewhere.
func MigrateRuns(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.SeedRun{}, &models.SeedRunLog{}); err != nil {
		return fmt.Errorf("failed to migrate run tables: %w", err)
	}
	return nil
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

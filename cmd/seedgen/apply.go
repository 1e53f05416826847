package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/pumpshop/seed/internal/database"
	"github.com/pumpshop/seed/internal/logging"
	"github.com/pumpshop/seed/internal/seed"
	"github.com/spf13/cobra"
)

const runLogRetention = 30 * 24 * time.Hour

var (
	migrateFlag bool
	checkFlag   bool
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Generate a dataset and load it into the configured database",
	RunE:  runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&migrateFlag, "migrate", false, "Create the target tables before loading")
	applyCmd.Flags().BoolVar(&checkFlag, "check", false, "Verify integrity of the loaded rows")
}

func runApply(cmd *cobra.Command, args []string) (err error) {
	d, err := dialect()
	if err != nil {
		return err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return err
	}
	if sqlDB, dbErr := db.DB(); dbErr == nil {
		defer sqlDB.Close()
	}

	if migrateFlag {
		err = database.Migrate(db)
	} else {
		err = database.MigrateRuns(db)
	}
	if err != nil {
		return err
	}

	run, err := database.StartRun(db, string(d))
	if err != nil {
		return err
	}
	runID := run.ID.String()

	dbHandler := logging.NewDBHandler(db, runID)
	prev := slog.Default()
	slog.SetDefault(slog.New(logging.NewMultiHandler(
		logging.NewJSONHandler(os.Stderr, cfg.LogLevel),
		dbHandler,
	)).With("run_id", runID, "dialect", string(d)))
	defer func() {
		dbHandler.Stop()
		slog.SetDefault(prev)
	}()

	var (
		statements int
		counts     map[string]int
	)
	defer func() {
		if finishErr := database.FinishRun(db, run, statements, counts, err); finishErr != nil {
			slog.Error("failed to record run outcome", "error", finishErr)
		}
	}()

	ds, err := generateDataset()
	if err != nil {
		return err
	}
	counts = ds.Counts()

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Minute)
	defer cancel()
	statements, err = database.Apply(ctx, db, seed.Statements(ds, d))
	if err != nil {
		return err
	}
	slog.Info("script applied", "statements", statements)

	if checkFlag {
		if _, err = database.CheckIntegrity(db); err != nil {
			return err
		}
		slog.Info("integrity check passed", "rows", total(counts))
	}

	if _, pruneErr := logging.PruneRunLogs(db, runLogRetention); pruneErr != nil {
		slog.Warn("run log cleanup failed", "error", pruneErr)
	}
	return nil
}

func total(counts map[string]int) int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

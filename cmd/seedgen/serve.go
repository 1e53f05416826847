package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pumpshop/seed/internal/database"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/routes"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	portFlag   string
	fromDBFlag bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve a dataset through the web client's HTTP API",
	Long: `Starts a mock of the shop API backed by a freshly generated dataset,
or by the rows already in the configured database with --from-db.
Every seeded user logs in with the seed password.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&portFlag, "port", "", "Listen port (or set PORT)")
	serveCmd.Flags().BoolVar(&fromDBFlag, "from-db", false, "Serve rows loaded from the database")
}

// loadDataset returns the dataset to serve and, with --from-db, the
// connection it was read from.
func loadDataset() (*models.Dataset, *gorm.DB, error) {
	if !fromDBFlag {
		ds, err := generateDataset()
		return ds, nil, err
	}
	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	ds, err := database.LoadDataset(db)
	if err != nil {
		return nil, nil, err
	}
	return ds, db, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	ds, db, err := loadDataset()
	if err != nil {
		return err
	}
	if portFlag != "" {
		cfg.Port = portFlag
	}

	app := routes.NewApp(cfg, db, ds)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	listenErr := make(chan error, 1)
	go func() {
		slog.Info("server starting", "port", cfg.Port, "jobs", len(ds.Jobs))
		listenErr <- app.Listen(":" + cfg.Port)
	}()

	select {
	case err := <-listenErr:
		return err
	case <-quit:
	}
	slog.Info("shutting down server...")

	if err := app.Shutdown(); err != nil {
		slog.Error("server shutdown error", "error", err)
	}
	if db != nil {
		if sqlDB, err := db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				slog.Error("database close error", "error", err)
			}
		}
	}

	slog.Info("server stopped")
	return nil
}

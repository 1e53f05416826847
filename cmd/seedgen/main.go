package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pumpshop/seed/internal/config"
	"github.com/pumpshop/seed/internal/logging"
	"github.com/pumpshop/seed/internal/models"
	"github.com/pumpshop/seed/internal/seed"
	"github.com/spf13/cobra"
)

var (
	cfg *config.Config

	dialectFlag string
	profileFlag string
	randomSeed  int64
)

var rootCmd = &cobra.Command{
	Use:           "seedgen",
	Short:         "Sample data generator for the pump/motor repair shop schema",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg = config.Load()
		logging.Setup(cfg.LogLevel)

		if cmd.Flags().Changed("dialect") {
			cfg.DBDialect = dialectFlag
		}
		if cmd.Flags().Changed("profile") {
			cfg.SeedProfile = profileFlag
		}
		if cmd.Flags().Changed("random-seed") {
			cfg.SeedRandom = randomSeed
		}

		if cfg.SentryDSN != "" {
			if err := sentry.Init(sentry.ClientOptions{
				Dsn:              cfg.SentryDSN,
				EnableTracing:    true,
				TracesSampleRate: 0.2,
				Environment:      cfg.AppEnv,
			}); err != nil {
				slog.Error("sentry init failed", "error", err)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dialectFlag, "dialect", "mysql", "SQL dialect: mysql, postgres or sqlite (or set DB_DIALECT)")
	rootCmd.PersistentFlags().StringVar(&profileFlag, "profile", "", "YAML seed profile (or set SEED_PROFILE)")
	rootCmd.PersistentFlags().Int64Var(&randomSeed, "random-seed", 0, "Random seed for reproducible content; 0 uses the clock")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(applyCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(verifyCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		sentry.CaptureException(err)
		sentry.Flush(2 * time.Second)
		os.Exit(1)
	}
	sentry.Flush(2 * time.Second)
}

func dialect() (seed.Dialect, error) {
	return seed.ParseDialect(cfg.DBDialect)
}

func profile() (seed.Profile, error) {
	if cfg.SeedProfile == "" {
		return seed.DefaultProfile(), nil
	}
	return seed.LoadProfile(cfg.SeedProfile)
}

// generateDataset builds a complete dataset from the configured profile.
func generateDataset() (*models.Dataset, error) {
	p, err := profile()
	if err != nil {
		return nil, err
	}
	hash, err := seed.HashPassword(cfg.SeedPassword, cfg.SeedBcryptCost)
	if err != nil {
		return nil, err
	}
	g, err := seed.NewGenerator(p, hash, seed.NewRand(cfg.SeedRandom))
	if err != nil {
		return nil, err
	}
	ds, err := g.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate dataset: %w", err)
	}

	counts := ds.Counts()
	slog.Info("dataset generated",
		"jobs", counts[models.ServiceRequest{}.TableName()],
		"customers", counts[models.CustomerDetail{}.TableName()],
		"users", counts[models.User{}.TableName()],
	)
	return ds, nil
}

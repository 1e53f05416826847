package main

import (
	"fmt"
	"time"

	"github.com/pumpshop/seed/internal/dto"
	"github.com/pumpshop/seed/internal/routes"
	"github.com/pumpshop/seed/internal/services"
	"github.com/pumpshop/seed/internal/verify"
	"github.com/spf13/cobra"
)

var (
	mockAPIFlag   bool
	scenariosFlag string
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Run the UI verification scenarios in a browser",
	Long: `Drives the web client at FRONTEND_URL through the recorded dashboard,
jobs list and job details scenarios using seeded accounts. With --mock-api
the client's /api calls are answered in-process from the dataset.`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolVar(&mockAPIFlag, "mock-api", false, "Answer /api requests from the dataset instead of a backend")
	verifyCmd.Flags().BoolVar(&fromDBFlag, "from-db", false, "Use rows loaded from the database")
	verifyCmd.Flags().StringVar(&scenariosFlag, "scenarios", "", "YAML scenario file to run instead of the built-in set")
}

func runVerify(cmd *cobra.Command, args []string) error {
	ds, _, err := loadDataset()
	if err != nil {
		return err
	}

	fixtures, err := verify.BuildFixtures(ds, cfg.SeedPassword)
	if err != nil {
		return err
	}

	opts := verify.Options{
		FrontendURL:   cfg.FrontendURL,
		Headless:      cfg.BrowserHeadless,
		Bin:           cfg.BrowserBin,
		ScreenshotDir: cfg.ScreenshotDir,
		Timeout:       cfg.BrowserTimeout,
	}
	if mockAPIFlag {
		opts.API = routes.NewApp(cfg, nil, ds)
		login, err := services.NewAuthService(ds, cfg).Login(&dto.LoginRequest{
			Username: fixtures.Owner,
			Password: cfg.SeedPassword,
		})
		if err != nil {
			return fmt.Errorf("failed to sign owner token: %w", err)
		}
		fixtures.OwnerToken = login.Token
	}

	scenarios := verify.BuiltinScenarios(fixtures)
	if scenariosFlag != "" {
		if scenarios, err = verify.LoadScenarios(scenariosFlag); err != nil {
			return err
		}
	}

	runner, err := verify.NewRunner(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer runner.Close()

	report := runner.Run(cmd.Context(), scenarios)
	out := cmd.OutOrStdout()
	for _, res := range report.Results {
		status := "PASS"
		if res.Err != nil {
			status = "FAIL"
		}
		fmt.Fprintf(out, "%s  %-20s %s\n", status, res.Scenario, res.Duration.Round(time.Millisecond))
		if res.Err != nil {
			fmt.Fprintf(out, "      %v\n", res.Err)
		}
	}
	return report.Err()
}

package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pumpshop/seed/internal/seed"
	"github.com/spf13/cobra"
)

var outFlag string

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a sample data SQL script",
	Long: `Generates one randomized dataset and writes it as a SQL script of
single-line INSERT statements, bracketed by foreign key toggles.
Nothing is written when generation fails.`,
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&outFlag, "out", "o", "-", "Output file, - for stdout")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := dialect()
	if err != nil {
		return err
	}
	ds, err := generateDataset()
	if err != nil {
		return err
	}

	var w io.Writer = cmd.OutOrStdout()
	if outFlag != "" && outFlag != "-" {
		f, err := os.Create(outFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := seed.Write(w, ds, d); err != nil {
		return err
	}
	slog.Info("script written", "dialect", d, "out", outFlag)
	return nil
}

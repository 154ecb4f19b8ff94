// Package cli wires configuration, import, export and reporting into the
// fixture-export command.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/clubfeed/fixture-export/internal/config"
	"github.com/clubfeed/fixture-export/internal/export"
	"github.com/clubfeed/fixture-export/internal/importer"
	"github.com/clubfeed/fixture-export/internal/logger"
	"github.com/clubfeed/fixture-export/internal/report"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagClubID    string
	flagOutputDir string
	flagConfig    string
	flagFormat    string
	flagVerbose   bool
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixture-export",
		Short: "Export club fixture data to CSV",
		Long: `Fetches match/fixture records for a sports club and exports them as CSV.
The source format is not guaranteed; extraction falls through structured JSON,
markup tables and blocks, embedded script data, and a raw text-line scan.`,
		RunE:          runImport,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVar(&flagClubID, "club-id", "", "Club identifier (defaults to CLUB_ID env or built-in)")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", "", "Directory for CSV output (defaults to OUTPUT_DIR env or 'data')")
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to optional YAML config file")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Summary format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	format := report.Format(flagFormat)
	if format != report.FormatText && format != report.FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	if flagVerbose {
		logger.SetDefault(logger.New(logger.LevelDebug, os.Stdout))
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if flagClubID != "" {
		cfg.ClubID = flagClubID
	}
	if flagOutputDir != "" {
		cfg.OutputDir = flagOutputDir
	}

	logger.Info("starting fixture data import", logger.Fields{
		"club_id":    cfg.ClubID,
		"output_dir": cfg.OutputDir,
	})

	result := importer.New(cfg).Run(context.Background())

	now := time.Now().UTC()
	files, err := export.Write(result.Records, cfg.OutputDir, now)
	if err != nil {
		return fmt.Errorf("exporting fixtures: %w", err)
	}

	summary := &report.Summary{
		RecordCount:  len(result.Records),
		SnapshotFile: files.Snapshot,
		LatestFile:   files.Latest,
		DataSource:   result.Endpoint,
		Fallback:     result.Fallback,
		CompletedAt:  now,
	}

	if err := report.Write(cmd.OutOrStdout(), summary, format); err != nil {
		return err
	}
	if err := report.PublishGitHub(summary); err != nil {
		return fmt.Errorf("publishing run report: %w", err)
	}

	return nil
}

// Execute runs the CLI.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

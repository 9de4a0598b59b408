// Package cmd wires the mli CLI: scouting report generation, watch mode, and
// registry inspection.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mlb-insights-service/internal/config"
	"mlb-insights-service/internal/logging"
)

const appVersion = "dev"

var (
	flagProvider    string
	flagSeasonStart string
	flagReportsDir  string
	flagRetention   int
	flagTeamsFile   string
	flagLogLevel    string
	flagLogFormat   string
)

var rootCmd = &cobra.Command{
	Use:   "mli",
	Short: "Major League Insights CLI",
	Long:  `Generates scouting reports for each day's MLB slate from season schedule data.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "schedule provider (statsapi or fixture)")
	rootCmd.PersistentFlags().StringVar(&flagSeasonStart, "season-start", "", "season start date (YYYY-MM-DD)")
	rootCmd.PersistentFlags().StringVar(&flagReportsDir, "reports-dir", "", "directory for rendered reports")
	rootCmd.PersistentFlags().IntVar(&flagRetention, "retention-days", 0, "days of report folders to keep")
	rootCmd.PersistentFlags().StringVar(&flagTeamsFile, "teams-file", "", "YAML team registry override")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format (text or json)")
}

// loadConfig reads environment configuration and applies any flags the user
// set on top of it.
func loadConfig(cmd *cobra.Command) config.Config {
	cfg := config.Load()

	flags := cmd.Root().PersistentFlags()
	if flags.Changed("provider") {
		cfg.Provider = flagProvider
	}
	if flags.Changed("season-start") {
		cfg.SeasonStart = flagSeasonStart
	}
	if flags.Changed("reports-dir") {
		cfg.Reports.Dir = flagReportsDir
	}
	if flags.Changed("retention-days") {
		cfg.Reports.RetentionDays = flagRetention
	}
	if flags.Changed("teams-file") {
		cfg.TeamsFile = flagTeamsFile
	}

	return cfg
}

func newLogger() *slog.Logger {
	level := flagLogLevel
	if level == "" {
		level = os.Getenv("LOG_LEVEL")
	}
	format := flagLogFormat
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	return logging.NewLogger(logging.Config{
		Level:   level,
		Format:  format,
		Service: "mlb-insights-service",
		Version: appVersion,
	})
}

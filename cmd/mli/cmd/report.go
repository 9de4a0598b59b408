package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"mlb-insights-service/internal/metrics"
	"mlb-insights-service/internal/report"
	"mlb-insights-service/internal/runner"
	"mlb-insights-service/internal/store"
	"mlb-insights-service/internal/timeutil"
)

var (
	reportDate  string
	reportPrint bool
)

// teeWriter persists reports and optionally echoes them to stdout.
type teeWriter struct {
	next  runner.ReportWriter
	print bool
}

func (w teeWriter) WriteReport(rep report.ScoutingReport) error {
	if err := w.next.WriteReport(rep); err != nil {
		return err
	}
	if w.print {
		fmt.Fprintln(os.Stdout, rep.Text)
	}
	return nil
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate scouting reports for a day's slate",
	Long:  `Fetches the season schedule, computes rolling averages and head-to-head records, and writes one scouting report per matchup on the slate.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		logger := newLogger()

		registry, err := buildRegistry(cfg)
		if err != nil {
			return fmt.Errorf("loading team registry: %w", err)
		}

		recorder := metrics.NewRecorder()
		provider, err := buildProvider(cfg, logger, recorder, false)
		if err != nil {
			return err
		}

		opts := runner.Options{
			SeasonStart: cfg.SeasonStart,
			Metrics:     recorder,
		}
		if reportDate != "" {
			runDate, err := timeutil.ParseDate(reportDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", reportDate, err)
			}
			opts.Now = func() time.Time { return runDate }
		}

		writer := teeWriter{next: buildWriter(cfg), print: reportPrint}
		r := runner.New(provider, buildNormalizer(registry, logger), store.NewMemoryStore(), writer, logger, opts)

		if err := r.RunOnce(cmd.Context()); err != nil {
			return err
		}

		stats := recorder.RunStats()
		fmt.Fprintf(os.Stdout, "wrote %d report(s) to %s\n", stats.ReportsWritten, cfg.Reports.Dir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringVar(&reportDate, "date", "", "run date (YYYY-MM-DD, default today)")
	reportCmd.Flags().BoolVar(&reportPrint, "print", false, "print rendered reports to stdout")
}

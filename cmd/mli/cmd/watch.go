package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"mlb-insights-service/internal/logging"
	"mlb-insights-service/internal/metrics"
	"mlb-insights-service/internal/runner"
	"mlb-insights-service/internal/store"
)

const shutdownTimeout = 10 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Regenerate slate reports on an interval",
	Long:  `Runs the report cycle on a fixed interval so reports track score changes through the day. Optionally exposes Prometheus metrics and a readiness endpoint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		logger := newLogger()

		registry, err := buildRegistry(cfg)
		if err != nil {
			return fmt.Errorf("loading team registry: %w", err)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		recorder, promHandler, metricsShutdown, err := metrics.Setup(ctx, metrics.TelemetryConfig{
			Enabled:      cfg.Metrics.Enabled,
			Port:         cfg.Metrics.Port,
			ServiceName:  cfg.Metrics.ServiceName,
			OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
			OtlpInsecure: cfg.Metrics.OtlpInsecure,
		})
		if err != nil {
			return fmt.Errorf("setting up metrics: %w", err)
		}

		provider, err := buildProvider(cfg, logger, recorder, true)
		if err != nil {
			return err
		}

		r := runner.New(provider, buildNormalizer(registry, logger), store.NewMemoryStore(), buildWriter(cfg), logger, runner.Options{
			Interval:    cfg.WatchInterval,
			SeasonStart: cfg.SeasonStart,
			Metrics:     recorder,
		})

		var srv *http.Server
		if promHandler != nil {
			srv = newMetricsServer(cfg.Metrics.Port, promHandler, r)
			go func() {
				logging.Info(logger, "metrics server listening", "addr", srv.Addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logging.Error(logger, "metrics server failed", err)
					stop()
				}
			}()
		}

		r.Start(ctx)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = r.Stop(shutdownCtx)
		if srv != nil {
			_ = srv.Shutdown(shutdownCtx)
		}
		if err := metricsShutdown(shutdownCtx); err != nil {
			logging.Error(logger, "metrics shutdown failed", err)
		}
		logging.Info(logger, "watch shut down cleanly")
		return nil
	},
}

// newMetricsServer serves Prometheus metrics plus readiness and status probes
// backed by the runner's health.
func newMetricsServer(port string, promHandler http.Handler, r *runner.Runner) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promHandler)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.HandleFunc("/readyz", func(w http.ResponseWriter, req *http.Request) {
		status := r.Status()
		w.Header().Set("Content-Type", "application/json")
		if !status.IsReady() {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ready":                status.IsReady(),
			"consecutive_failures": status.ConsecutiveFailures,
			"last_error":           status.LastError,
			"last_success":         status.LastSuccess,
		})
	})

	return &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"mlb-insights-service/internal/insights"
	"mlb-insights-service/internal/report"
	"mlb-insights-service/internal/runner"
	"mlb-insights-service/internal/store"
	"mlb-insights-service/internal/teams"
	"mlb-insights-service/internal/testutil"
)

func TestLoadConfigAppliesFlagOverrides(t *testing.T) {
	cmd := rootCmd
	if err := cmd.PersistentFlags().Set("provider", "fixture"); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	if err := cmd.PersistentFlags().Set("reports-dir", t.TempDir()); err != nil {
		t.Fatalf("setting flag: %v", err)
	}
	defer func() {
		_ = cmd.PersistentFlags().Set("provider", "")
		_ = cmd.PersistentFlags().Set("reports-dir", "")
	}()

	cfg := loadConfig(cmd)
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider override, got %q", cfg.Provider)
	}
	if cfg.Reports.Dir == "reports" {
		t.Fatalf("expected reports dir override, got %q", cfg.Reports.Dir)
	}
}

func TestBuildProviderRejectsUnknown(t *testing.T) {
	cfg := loadConfig(rootCmd)
	cfg.Provider = "carrier-pigeon"

	if _, err := buildProvider(cfg, nil, nil, false); err == nil {
		t.Fatalf("expected error for unknown provider")
	}
}

func TestReadyzReflectsRunnerHealth(t *testing.T) {
	registry, err := teams.Load()
	if err != nil {
		t.Fatalf("loading registry: %v", err)
	}
	logger, _ := testutil.NewBufferLogger()

	r := runner.New(testutil.EmptyProvider{}, insights.NewNormalizer(registry, logger), store.NewMemoryStore(), nil, logger, runner.Options{})
	srv := newMetricsServer("0", http.NewServeMux(), r)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rr := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 before any success, got %d", rr.Code)
	}

	if err := r.RunOnce(context.Background()); err != nil {
		t.Fatalf("RunOnce() error = %v", err)
	}

	rr = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 after a success, got %d", rr.Code)
	}
}

func TestTeeWriterDelegates(t *testing.T) {
	dir := t.TempDir()
	w := teeWriter{next: report.NewWriter(dir, 7)}

	rep := report.ScoutingReport{
		Date: "2025-08-25",
		Home: testutil.SampleTeam("NYY"),
		Away: testutil.SampleTeam("BOS"),
		Text: "body\n",
	}
	if err := w.WriteReport(rep); err != nil {
		t.Fatalf("WriteReport() error = %v", err)
	}
}

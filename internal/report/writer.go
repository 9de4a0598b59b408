package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"mlb-insights-service/internal/timeutil"
)

// Writer persists rendered reports and a manifest with retention pruning.
// Writes are atomic (tmp + rename) and skipped when the content on disk is
// already identical, keeping reruns byte-stable.
type Writer struct {
	basePath      string
	retentionDays int
	now           func() time.Time
}

// NewWriter constructs a writer rooted at basePath with a rolling retention
// window over report date folders.
func NewWriter(basePath string, retentionDays int) *Writer {
	if retentionDays <= 0 {
		retentionDays = 14
	}
	return &Writer{
		basePath:      basePath,
		retentionDays: retentionDays,
		now:           time.Now,
	}
}

// BasePath exposes the writer root path (primarily for testing).
func (w *Writer) BasePath() string {
	if w == nil {
		return ""
	}
	return w.basePath
}

// WriteReport persists one scouting report under <base>/<date>/ and updates
// the manifest, pruning date folders older than the retention window.
func (w *Writer) WriteReport(rep ScoutingReport) error {
	if w == nil {
		return fmt.Errorf("report writer not configured")
	}
	if rep.Date == "" {
		return fmt.Errorf("report date required")
	}

	dir := filepath.Join(w.basePath, rep.Date)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	target := filepath.Join(dir, rep.Filename())
	data := []byte(rep.Text)

	if existing, err := os.ReadFile(target); err == nil && bytes.Equal(existing, data) {
		return w.updateManifest(rep.Date)
	}

	tmp := target + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, target); err != nil {
		return err
	}

	return w.updateManifest(rep.Date)
}

func (w *Writer) updateManifest(date string) error {
	manifestPath := filepath.Join(w.basePath, "manifest.json")
	m := readManifest(manifestPath, w.retentionDays)

	dates, err := w.listDates()
	if err != nil {
		return err
	}
	if !containsDate(dates, date) {
		dates = append(dates, date)
	}
	pruned, err := w.pruneOldDates(dates)
	if err != nil {
		return err
	}

	m.Dates = pruned
	m.LastRefreshed = w.now().UTC()
	m.RetentionDays = w.retentionDays

	return writeManifest(w.basePath, m)
}

func containsDate(dates []string, date string) bool {
	for _, d := range dates {
		if d == date {
			return true
		}
	}
	return false
}

func (w *Writer) listDates() ([]string, error) {
	entries, err := os.ReadDir(w.basePath)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, err
	}
	var dates []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if _, err := timeutil.ParseDate(e.Name()); err != nil {
			continue
		}
		dates = append(dates, e.Name())
	}
	sort.Strings(dates)
	return dates, nil
}

func (w *Writer) pruneOldDates(dates []string) ([]string, error) {
	now := w.now().UTC()
	cutoff := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, -w.retentionDays)
	var keep []string
	for _, d := range dates {
		parsed, err := timeutil.ParseDate(d)
		if err != nil {
			keep = append(keep, d)
			continue
		}
		if parsed.Before(cutoff) {
			if err := os.RemoveAll(filepath.Join(w.basePath, d)); err != nil {
				return nil, err
			}
			continue
		}
		keep = append(keep, d)
	}
	sort.Strings(keep)
	return keep, nil
}

package report

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Manifest records which report dates exist on disk and the retention policy
// that pruned them.
type Manifest struct {
	Dates         []string  `json:"dates"`
	LastRefreshed time.Time `json:"lastRefreshed"`
	RetentionDays int       `json:"retentionDays"`
}

func readManifest(path string, retentionDays int) Manifest {
	m := Manifest{RetentionDays: retentionDays}
	raw, err := os.ReadFile(path)
	if err != nil {
		return m
	}
	_ = json.Unmarshal(raw, &m)
	m.RetentionDays = retentionDays
	return m
}

func writeManifest(basePath string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(basePath, "manifest.json"), data, 0o644)
}

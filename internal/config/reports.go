package config

// ReportsConfig controls where rendered reports land and how long they are kept.
type ReportsConfig struct {
	Dir           string
	RetentionDays int // report date folders older than this are pruned
}

func loadReports() ReportsConfig {
	return ReportsConfig{
		Dir:           envOrDefault(envReportsDir, defaultReportsDir),
		RetentionDays: intEnvOrDefault(envReportDays, defaultRetentionDays),
	}
}
